package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_photo_1_.png", sanitizeFilename("../my photo (1).png"))

	long := sanitizeFilename(strings.Repeat("a", 300) + ".jpeg")
	assert.Len(t, long, maxStoredName)
	assert.True(t, strings.HasSuffix(long, ".jpeg"))
}

func TestGenerateUniqueFilename_FitsColumn(t *testing.T) {
	rel := GenerateUniqueFilename(FolderAlumniEvents, strings.Repeat("b", 400)+".png")
	assert.LessOrEqual(t, len(rel), 255)
	assert.True(t, strings.HasPrefix(rel, FolderAlumniEvents+"/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))
}
