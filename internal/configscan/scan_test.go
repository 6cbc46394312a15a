package configscan_test

import (
	"strings"
	"testing"

	"github.com/go-git-core/gitconfig/internal/configscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEmitsSectionsAndEntries(t *testing.T) {
	input := "[core]\n\tbare = true\n[user \"work\"]\n\temail = a@b.com\n"

	var events []configscan.Event
	err := configscan.Scan(strings.NewReader(input), func(ev configscan.Event) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, events)

	var sawBare, sawEmail bool
	for _, ev := range events {
		if ev.Kind == configscan.Entry && ev.Section == "core" && ev.Key == "bare" {
			assert.Equal(t, "true", ev.Value)
			sawBare = true
		}
		if ev.Kind == configscan.Entry && ev.Section == "user" && ev.Subsection == "work" && ev.Key == "email" {
			assert.Equal(t, "a@b.com", ev.Value)
			sawEmail = true
		}
	}
	assert.True(t, sawBare)
	assert.True(t, sawEmail)
}

func TestScanPropagatesEmitError(t *testing.T) {
	boom := assert.AnError
	err := configscan.Scan(strings.NewReader("[core]\nbare = true\n"), func(ev configscan.Event) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
