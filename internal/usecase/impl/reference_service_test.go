package impl

import (
	"testing"

	"shopseva/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceService_Districts(t *testing.T) {
	cfg := newTestConfig()
	cfg.Reference = config.ReferenceConfig{
		Categories: []config.ReferenceItem{{ID: "grocery", Name: "Grocery", Icon: "shopping-basket"}},
		States:     []config.ReferenceItem{{ID: "gujarat", Name: "Gujarat"}, {ID: "rajasthan", Name: "Rajasthan"}},
		Districts: []config.ReferenceItem{
			{ID: "surat", Name: "Surat", StateID: "gujarat"},
			{ID: "jaipur", Name: "Jaipur", StateID: "rajasthan"},
			{ID: "rajkot", Name: "Rajkot", StateID: "gujarat"},
		},
	}
	srv := NewReferenceService(cfg)

	require.Len(t, srv.Categories(), 1)
	assert.Equal(t, "shopping-basket", srv.Categories()[0].Icon)
	assert.Len(t, srv.States(), 2)
	assert.Len(t, srv.Districts(""), 3)

	gujarat := srv.Districts("Gujarat")
	require.Len(t, gujarat, 2)
	assert.Equal(t, "surat", gujarat[0].ID)
	assert.Equal(t, "rajkot", gujarat[1].ID)
	assert.Empty(t, srv.Districts("kerala"))
}
