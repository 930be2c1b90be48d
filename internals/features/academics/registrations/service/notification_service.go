package service

import (
	"fmt"
	"strings"
	"time"

	"darulfatheh_backend/internals/features/academics/registrations/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/mailer"
)

const (
	noCourse  = "Not Selected"
	noProgram = "N/A"
	separator = "--------------------------------------------"
)

// RegistrationMessage menyusun email ringkasan registrasi untuk admin.
// courseTitle kosong berarti tidak memilih course.
func RegistrationMessage(reg *model.StudentRegistrationModel, courseTitle, from, to string) mailer.Message {
	if strings.TrimSpace(courseTitle) == "" {
		courseTitle = noCourse
	}
	program := strings.TrimSpace(reg.RegistrationProgramName)
	if program == "" {
		program = noProgram
	}
	fullName := reg.FullName()

	var b strings.Builder
	b.WriteString("A new student has registered via the website.\n\n")
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "FULL NAME: %s\n", fullName)
	fmt.Fprintf(&b, "DOB:       %s\n", time.Time(reg.RegistrationDOB).Format(helper.DateLayout))
	fmt.Fprintf(&b, "EMAIL:     %s\n", reg.RegistrationEmail)
	fmt.Fprintf(&b, "MOBILE:    %s\n", reg.RegistrationMobile)
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "COURSE:     %s\n", courseTitle)
	fmt.Fprintf(&b, "SPECIFIC PROGRAM: %s\n", program)
	b.WriteString(separator + "\n\n")
	b.WriteString("Please verify this entry in the Admin Panel.")

	return mailer.Message{
		From:    from,
		To:      []string{to},
		Subject: "New Student Registration: " + fullName,
		Body:    b.String(),
	}
}
