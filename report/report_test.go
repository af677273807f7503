package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masnyjimmy/respsync/reconcile"
	"github.com/masnyjimmy/respsync/syntax"
)

const driftedHandlers = `package users

// GetUser returns one user.
//api:response OK "Returns the requested user" LegacyDto
func GetUser(id string) respond.Response {
	return respond.Ok(UserDto{})
}

//api:response OK "Lists users" UserListDto
func ListUsers() respond.Response {
	return respond.Ok(UserListDto{})
}

func helper() int {
	return 0
}
`

func parsedFiles(t *testing.T, src string) []*syntax.File {
	t.Helper()

	file, err := syntax.ParseFile("users_handler.go", []byte(src))
	require.NoError(t, err)

	return []*syntax.File{file}
}

func TestScan(t *testing.T) {
	p := reconcile.NewPipeline("", nil)

	out := Scan(".", parsedFiles(t, driftedHandlers), p, "respond.Response")

	// helper() is not handler shaped, ListUsers is already in sync
	assert.Equal(t, 2, out.Handlers)
	require.Len(t, out.Findings, 1)

	finding := out.Findings[0]
	assert.Equal(t, "GetUser", finding.Function)
	assert.Equal(t, []string{"OK"}, finding.Retyped)
	assert.Empty(t, finding.Added)
	require.Len(t, finding.Directives, 1)
	assert.Equal(t, `//api:response OK "Returns the requested user" UserDto`, finding.Directives[0])

	assert.True(t, out.HasDrift())
	assert.False(t, out.HasErrors())
}

func TestScan_ExtractionErrorBecomesFinding(t *testing.T) {
	const src = `package users

func BrewCoffee() respond.Response {
	return respond.Teapot()
}
`

	p := reconcile.NewPipeline("", nil)
	out := Scan(".", parsedFiles(t, src), p, "respond.Response")

	require.Len(t, out.Findings, 1)
	assert.Contains(t, out.Findings[0].Error, "Teapot")
	assert.Nil(t, out.Findings[0].Doc())

	assert.True(t, out.HasErrors())
	assert.False(t, out.HasDrift())
}

func TestRenderers(t *testing.T) {
	p := reconcile.NewPipeline("", nil)
	out := Scan(".", parsedFiles(t, driftedHandlers), p, "respond.Response")

	text := out.Text()
	assert.Contains(t, text, "scanned 2 handlers")
	assert.Contains(t, text, "GetUser")
	assert.Contains(t, text, "retyped: OK")

	var decoded Report
	require.NoError(t, json.Unmarshal(out.JSON(), &decoded))
	assert.Equal(t, out.Handlers, decoded.Handlers)
	require.Len(t, decoded.Findings, 1)
	assert.Equal(t, "GetUser", decoded.Findings[0].Function)

	assert.NotEmpty(t, out.YAML())
}

func TestText_InSync(t *testing.T) {
	p := reconcile.NewPipeline("", nil)
	out := Scan(".", nil, p, "respond.Response")

	assert.Contains(t, out.Text(), "annotations are in sync")
}
