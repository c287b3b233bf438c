package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTitleLines(t *testing.T) {
	raw := "Protein Power Bowl\nGreen Garden Wrap\nSunrise Smoothie"
	assert.Equal(t, []string{"Protein Power Bowl", "Green Garden Wrap"}, ParseTitleLines(raw, 2))
}

func TestParseTitleLinesSkipsBulletsAndBlanks(t *testing.T) {
	raw := "\n- bulleted line\n* another bullet\n• unicode bullet\n  Hearty Lentil Soup  \n\nQuick Veggie Stir Fry\n"
	assert.Equal(t, []string{"Hearty Lentil Soup", "Quick Veggie Stir Fry"}, ParseTitleLines(raw, 2))
}

func TestParseTitleLinesEmptyOutput(t *testing.T) {
	assert.Empty(t, ParseTitleLines("", 2))
	assert.Empty(t, ParseTitleLines("- only\n- bullets", 2))
}
