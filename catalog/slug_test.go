package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Dome Cameras":           "dome-cameras",
		"Cameras":                "cameras",
		"AcuSense  2.0":          "acusense-2-0",
		"already-a-slug":         "already-a-slug",
		"PTZ & Bullet (Outdoor)": "ptz-bullet-outdoor-",
		"ANPR/LPR":               "anpr-lpr",
	}
	for name, want := range cases {
		assert.Equal(t, want, Slugify(name), "Slugify(%q)", name)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	names := []string{"Dome Cameras", "AcuSense  2.0", "PTZ & Bullet (Outdoor)", "x"}
	for _, name := range names {
		once := Slugify(name)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("dome-cameras"))
	assert.True(t, ValidKey("64f1a2b3c4d5e6f708192a3b"))
	assert.True(t, ValidKey("64F1A2B3C4D5E6F708192A3B"))
	assert.False(t, ValidKey(""))
	assert.False(t, ValidKey("Dome Cameras"))
	assert.False(t, ValidKey("dome_cameras"))
	assert.False(t, ValidKey("dome/../cameras"))
}
