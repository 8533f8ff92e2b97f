// Package render styles erpctl terminal output.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/errors/v5"
	"github.com/wasteworks/erpadmin"
	"github.com/wasteworks/erpadmin/gateway"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)

// Heading renders a section heading.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// OK renders a success line.
func OK(format string, args ...any) string {
	return okStyle.Render(fmt.Sprintf(format, args...))
}

// Err renders a failure line.
func Err(format string, args ...any) string {
	return errStyle.Render(fmt.Sprintf(format, args...))
}

// KV renders an aligned label: value block.
func KV(pairs ...[2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}

	b := &strings.Builder{}
	for _, p := range pairs {
		fmt.Fprintf(b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-*s", width+1, p[0]+":")), p[1])
	}

	return b.String()
}

// Identity renders the authenticated session for whoami and status.
func Identity(auth erpadmin.Authenticated) string {
	pairs := [][2]string{
		{"User", fmt.Sprintf("%s <%s>", auth.User.Name, auth.User.Email)},
		{"Role", string(auth.User.Role)},
	}
	if auth.Tenant != nil {
		pairs = append(pairs, [2]string{"Tenant", auth.Tenant.Name})
	}

	b := &strings.Builder{}
	b.WriteString(Heading("Session"))
	b.WriteString("\n")
	b.WriteString(KV(pairs...))

	if auth.User.Role == gateway.RoleSuperAdmin {
		b.WriteString(labelStyle.Render("Permissions:") + " all (super_admin)\n")

		return b.String()
	}

	perms := make([]string, 0, len(auth.Permissions))
	for p := range auth.Permissions {
		perms = append(perms, string(p))
	}
	sort.Strings(perms)

	b.WriteString(labelStyle.Render("Permissions:") + "\n")
	for _, p := range perms {
		fmt.Fprintf(b, "  %s\n", p)
	}

	return b.String()
}

// JSON pretty-prints a raw backend payload.
func JSON(data json.RawMessage) (string, error) {
	if len(data) == 0 {
		return "null\n", nil
	}

	buf := &bytes.Buffer{}
	if err := json.Indent(buf, data, "", "  "); err != nil {
		return "", errors.Wrap(err, "json.Indent()")
	}
	buf.WriteString("\n")

	return buf.String(), nil
}

// APIError renders a backend failure, including the per-field
// validation list when the server sent one.
func APIError(err error) string {
	apiErr, ok := gateway.AsError(err)
	if !ok {
		return Err("%s", err)
	}

	b := &strings.Builder{}
	b.WriteString(Err("%s", apiErr.Message))
	b.WriteString("\n")
	for _, fe := range apiErr.FieldErrors {
		fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(fe.Field+":"), fe.Message)
	}

	return b.String()
}
