package syntax

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestRewrite_ReplacesDocBlock(t *testing.T) {
	file, err := ParseFile("users_handler.go", []byte(sampleHandler))
	require.NoError(t, err)

	fn := &file.Functions[0]

	out, err := Rewrite(file.Src, fn, []Annotation{
		{Raw: "// GetUser returns one user."},
		ResponseAnnotation("OK", "Returns the requested user", "UserDto"),
		ResponseAnnotation("NotFound", "TODO: describe response", ""),
	})

	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "// GetUser returns one user.\n//api:response OK \"Returns the requested user\" UserDto\n//api:response NotFound \"TODO: describe response\"\nfunc GetUser")
	assert.NotContains(t, text, "LegacyDto")
	assert.NotContains(t, text, "api:operation")

	// the rewritten file still parses and yields the new annotations
	again, err := ParseFile("users_handler.go", out)
	require.NoError(t, err)
	require.Len(t, again.Functions[0].Doc, 3)
	assert.Equal(t, []string{"NotFound", "TODO: describe response"}, again.Functions[0].Doc[2].Args)
}

func TestRewrite_InsertsWhenNoDoc(t *testing.T) {
	const src = `package users

func DeleteUser(id string) respond.Response {
	return respond.StatusCode(respond.NoContent)
}
`

	file, err := ParseFile("users_handler.go", []byte(src))
	require.NoError(t, err)

	out, err := Rewrite(file.Src, &file.Functions[0], []Annotation{
		ResponseAnnotation("NoContent", "TODO: describe response", ""),
	})

	require.NoError(t, err)
	assert.Contains(t, string(out), "//api:response NoContent \"TODO: describe response\"\nfunc DeleteUser")
}

func TestApplyAll_MultipleFunctionsBottomUp(t *testing.T) {
	const src = `package users

//api:response OK "Lists users" LegacyDto
func ListUsers() respond.Response {
	return respond.Ok(UserListDto{})
}

//api:response OK "Returns one user" LegacyDto
func GetUser(id string) respond.Response {
	return respond.Ok(UserDto{})
}
`

	file, err := ParseFile("users_handler.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, file.Functions, 2)

	edits := []Edit{
		{Fn: &file.Functions[0], Doc: []Annotation{ResponseAnnotation("OK", "Lists users", "UserListDto")}},
		{Fn: &file.Functions[1], Doc: []Annotation{ResponseAnnotation("OK", "Returns one user", "UserDto")}},
	}

	out, err := ApplyAll(file, edits)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "//api:response OK \"Lists users\" UserListDto\nfunc ListUsers")
	assert.Contains(t, text, "//api:response OK \"Returns one user\" UserDto\nfunc GetUser")
	assert.NotContains(t, text, "LegacyDto")
}
