package views

import (
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	helper "darulfatheh_backend/internals/helpers"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 7, 15, 4, 0, 0, time.UTC)

	assert.Equal(t, "Mar 07, 2024", formatDate(ts, displayDate))
	assert.Equal(t, "2024-03-07", formatDate(&ts, inputDate))
	assert.Equal(t, "2024-03-07", formatDate(datatypes.Date(ts), inputDate))
	assert.Equal(t, "", formatDate(time.Time{}, displayDate))
	assert.Equal(t, "", formatDate((*time.Time)(nil), displayDate))
	assert.Equal(t, "", formatDate("2024-03-07", displayDate))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("  short ", 10))
	assert.Equal(t, "hello…", truncate("hello world", 6))
	assert.Equal(t, "مرحبا…", truncate("مرحبا بالعالم", 5))
	assert.Equal(t, "untouched", truncate("untouched", 0))
}

func TestFuncs(t *testing.T) {
	fns := Funcs(helper.NewMediaStore(t.TempDir()))

	money := fns["money"].(func(*float64) string)
	decimal := fns["decimal"].(func(*float64) string)
	v := 1250.5
	assert.Equal(t, "1,250.50", money(&v))
	assert.Equal(t, "-", money(nil))
	assert.Equal(t, "1250.50", decimal(&v))
	assert.Equal(t, "", decimal(nil))

	lb := fns["linebreaks"].(func(string) template.HTML)
	assert.Equal(t, template.HTML("a &lt;b&gt;<br>c"), lb("a <b>\r\nc\n"))

	stars := fns["stars"].(func(int) []int)
	assert.Len(t, stars(4), 4)
	assert.Empty(t, stars(-1))
}
