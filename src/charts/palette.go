// Package charts renders pass/fail and score charts for a grade book and
// writes them as PNG + PDF pairs.
package charts

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/corhuila/gradecharts/src/types"
)

// Role is a semantic color slot shared by every chart.
type Role string

const (
	RoleApproved    Role = "approved"
	RoleNotApproved Role = "not-approved"
	RolePrimary     Role = "primary"
	RoleSecondary   Role = "secondary"
	RoleWarning     Role = "warning"
	RoleInfo        Role = "info"
	RoleSuccess     Role = "success"
	RoleDanger      Role = "danger"
)

var paletteHex = map[Role]string{
	RoleApproved:    "#2ecc71", // green
	RoleNotApproved: "#e74c3c", // red
	RolePrimary:     "#3498db", // blue
	RoleSecondary:   "#9b59b6", // purple
	RoleWarning:     "#f39c12", // orange
	RoleInfo:        "#1abc9c", // turquoise
	RoleSuccess:     "#27ae60", // dark green
	RoleDanger:      "#c0392b", // dark red
}

// Roles lists every palette slot in a stable order.
var Roles = []Role{RoleApproved, RoleNotApproved, RolePrimary, RoleSecondary, RoleWarning, RoleInfo, RoleSuccess, RoleDanger}

// Color returns the palette color for r, or opaque black for an unknown role.
func Color(r Role) drawing.Color {
	hex, ok := paletteHex[r]
	if !ok {
		return drawing.Color{A: 255}
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// Hex returns the "#rrggbb" form of the palette color for r.
func Hex(r Role) string {
	c := Color(r)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette returns a copy of the role to color mapping.
func Palette() map[Role]drawing.Color {
	out := make(map[Role]drawing.Color, len(paletteHex))
	for r := range paletteHex {
		out[r] = Color(r)
	}
	return out
}

// StatusRole maps a status label to its palette slot.
func StatusRole(status string) (Role, bool) {
	switch status {
	case types.StatusApproved:
		return RoleApproved, true
	case types.StatusNotApproved:
		return RoleNotApproved, true
	}
	return "", false
}

// ScoreRole classifies a score against the passing threshold.
func ScoreRole(score float64) Role {
	if score < types.PassingScore {
		return RoleNotApproved
	}
	return RoleApproved
}

// withAlpha scales the palette color to the given opacity in [0,1].
func withAlpha(r Role, alpha float64) drawing.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return Color(r).WithAlpha(uint8(alpha*255 + 0.5))
}
