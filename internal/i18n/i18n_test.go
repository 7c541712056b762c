package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loicseguin/velolog/internal/i18n"
)

func TestNone_passesThrough(t *testing.T) {
	tr := i18n.None()

	assert.Equal(t, "Duration", tr("Duration"))
	assert.Equal(t, "anything at all", tr("anything at all"))
}

func TestFrench_translatesKnownKeys(t *testing.T) {
	tr := i18n.French()

	assert.Equal(t, "Durée", tr("Duration"))
	assert.Equal(t, "Vitesse moyenne", tr("Average speed"))
	assert.Equal(t, "Randonnée ajoutée.", tr("Ride added."))
}

func TestFrench_unknownKeyFallsBackToEnglish(t *testing.T) {
	tr := i18n.French()

	assert.Equal(t, "not in the catalog", tr("not in the catalog"))
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name   string
		lcAll  string
		lang   string
		key    string
		expect string
	}{
		{name: "french locale via LANG", lang: "fr_CA.UTF-8", key: "Duration", expect: "Durée"},
		{name: "LC_ALL wins over LANG", lcAll: "fr_FR.UTF-8", lang: "en_US.UTF-8", key: "Duration", expect: "Durée"},
		{name: "english locale", lang: "en_US.UTF-8", key: "Duration", expect: "Duration"},
		{name: "unset locale", key: "Duration", expect: "Duration"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tc.lcAll)
			t.Setenv("LANG", tc.lang)

			tr := i18n.FromEnv()

			assert.Equal(t, tc.expect, tr(tc.key))
		})
	}
}
