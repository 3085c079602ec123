package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcaseCommand(t *testing.T) {
	output, _, err := executeCommand(t, "--theme", "dark", "showcase", "--width", "100")
	require.NoError(t, err)

	for _, want := range []string{"Buttons", "Pagination", "Skeleton", "Theme toggle", "Showing 1 - 10 of 230", "☾ Dark"} {
		assert.Contains(t, output, want)
	}
}

func TestBrowseModelUsesConfig(t *testing.T) {
	path := writeConfig(t, "theme: light\npagination:\n  page_size: 25\n")

	root := newRootCmd()
	flags := &rootFlags{configPath: path}
	app, err := loadAppContext(root, flags)
	require.NoError(t, err)

	model := newBrowseModel(app, browseOptions{items: 60})
	assert.Len(t, model.PageItems(), 25)
	assert.Equal(t, "Item #1", model.PageItems()[0])
	assert.False(t, model.Loading())
}
