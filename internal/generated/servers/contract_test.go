package servers_test

import (
	"regexp"
	"testing"

	"bakery/api/openapi"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathParam = regexp.MustCompile(`\{([^}]+)\}`)

func TestRegisterHandlers_MatchesDocument(t *testing.T) {
	// Given
	doc, err := openapi.Load()
	require.NoError(t, err)

	documented := map[string]bool{}
	for path, item := range doc.Paths.Map() {
		echoPath := pathParam.ReplaceAllString(path, ":$1")
		for method := range item.Operations() {
			documented[method+" "+echoPath] = true
		}
	}

	// When
	e := echo.New()
	servers.RegisterHandlers(e, nil)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	// Then
	for route := range documented {
		assert.True(t, registered[route], "documented operation has no route: %s", route)
	}
	for route := range registered {
		assert.True(t, documented[route], "route is not documented: %s", route)
	}
}
