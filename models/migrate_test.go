package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindColumnMismatches(t *testing.T) {
	fields := map[string][]string{
		"title":    {"title"},
		"imageUrl": {"image_url", "imageUrl"},
		"order":    {"order", "idx"},
		"video":    {"detail_video", "detailVideo"},
	}
	dbColumns := []string{"id", "title", "imageUrl", "idx", "created_at"}

	unmapped, missing := findColumnMismatches(dbColumns, fields)

	assert.Equal(t, []string{"id", "created_at"}, unmapped)
	assert.Equal(t, []string{"video"}, missing)
}

func TestFindColumnMismatches_AllAccounted(t *testing.T) {
	fields := map[string][]string{"title": {"title"}}

	unmapped, missing := findColumnMismatches([]string{"title"}, fields)

	assert.Empty(t, unmapped)
	assert.Empty(t, missing)
}
