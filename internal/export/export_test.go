package export

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-studio/internal/rendering"
	"github.com/jonathan/portfolio-studio/internal/types"
)

func TestDataURL_RoundTrips(t *testing.T) {
	html := "<html><body><h1>Jordan Ellis</h1></body></html>"
	u := DataURL(html)

	require.True(t, strings.HasPrefix(u, "data:text/html;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(u, "data:text/html;base64,"))
	require.NoError(t, err)
	assert.Equal(t, html, string(decoded))
}

func TestToPDF_UnknownTemplate(t *testing.T) {
	_, err := ToPDF(context.Background(), "nonexistent", types.TemplateData{})
	require.Error(t, err)

	var unknownErr *rendering.UnknownTemplateError
	assert.ErrorAs(t, err, &unknownErr)
}
