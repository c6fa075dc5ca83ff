package portfolio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Embedded(t *testing.T) {
	svc, err := New("")
	require.NoError(t, err)

	p := svc.Portfolio()
	assert.Equal(t, "Rohit Vitthal Desai", p.Personal.Name)
	assert.Equal(t, 15, p.QuickStats.Projects)
	assert.Len(t, p.Education, 2)
	assert.Empty(t, p.Education[0].Achievements)
	assert.NotEmpty(t, p.Education[1].Achievements)

	skills := svc.Skills()
	require.Len(t, skills.Categories, 3)
	assert.Equal(t, "AWS", skills.Categories[0].Skills[0].Name)
	assert.Equal(t, 85, skills.Categories[0].Skills[0].Level)
	assert.Equal(t, "91-100%", skills.ProficiencyScale.Expert)

	exp := svc.Experience()
	assert.Len(t, exp.Internships, 2)
	assert.Len(t, exp.Projects, 3)

	assert.Len(t, svc.Certifications(), 4)
	assert.Equal(t, "2025", svc.Certifications()[0].Date)

	assert.Equal(t, 2, svc.Resume().Details.Pages)
	assert.Len(t, svc.Contact().NextSteps, 3)
	assert.NotEmpty(t, svc.Contact().ThankYou)
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := "portfolio:\n  personal:\n    name: Jane Doe\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	svc, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", svc.Portfolio().Personal.Name)
	assert.NotNil(t, svc.Certifications())
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, ErrContentRead))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid", "portfolio: {personal: {name: A}}", false},
		{"missing name", "portfolio: {personal: {title: B}}", true},
		{"not yaml", "portfolio: [", true},
		{
			"level out of range",
			"portfolio: {personal: {name: A}}\nskills: {categories: [{name: X, skills: [{name: Go, level: 120}]}]}",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrContentInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}
