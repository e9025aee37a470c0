// Package win defines window classifications and the window descriptor
// consumed by configuration resolution.
//
// A window's type is a closed enumeration following the EWMH window type
// atoms. The Info descriptor carries the attributes pattern matchers and the
// resolution engine need; it is a plain value and never owns resources.
package win

import "strings"

// WindowType classifies a window's role.
type WindowType int

const (
	// Unknown is a window with no recognized type property.
	Unknown WindowType = iota
	// Desktop is a desktop background window.
	Desktop
	// Dock is a dock or panel.
	Dock
	// Toolbar is a torn-off toolbar.
	Toolbar
	// Menu is a torn-off menu.
	Menu
	// Utility is a small persistent utility window.
	Utility
	// Splash is a splash screen.
	Splash
	// Dialog is a dialog window.
	Dialog
	// Normal is an ordinary application window.
	Normal
	// DropdownMenu is a menu summoned from a menubar.
	DropdownMenu
	// PopupMenu is a menu summoned by a click, outside a menubar.
	PopupMenu
	// Tooltip is a hover tooltip.
	Tooltip
	// Notification is a notification bubble.
	Notification
	// Combo is a combo box popup.
	Combo
	// DND is a window being dragged.
	DND

	// NumWindowTypes is the number of window types. Keep last.
	NumWindowTypes
)

var windowTypeNames = [NumWindowTypes]string{
	Unknown:      "unknown",
	Desktop:      "desktop",
	Dock:         "dock",
	Toolbar:      "toolbar",
	Menu:         "menu",
	Utility:      "utility",
	Splash:       "splash",
	Dialog:       "dialog",
	Normal:       "normal",
	DropdownMenu: "dropdown_menu",
	PopupMenu:    "popup_menu",
	Tooltip:      "tooltip",
	Notification: "notification",
	Combo:        "combo",
	DND:          "dnd",
}

// String returns the configuration name of the window type.
func (t WindowType) String() string {
	if t < 0 || t >= NumWindowTypes {
		return "invalid"
	}
	return windowTypeNames[t]
}

// ParseWindowType maps a configuration name to a WindowType.
// Matching is case-insensitive. The second result reports whether the name
// is a known window type.
func ParseWindowType(name string) (WindowType, bool) {
	name = strings.ToLower(name)
	for t, n := range windowTypeNames {
		if n == name {
			return WindowType(t), true
		}
	}
	return Unknown, false
}

// Info describes a single window for pattern matching and option resolution.
type Info struct {
	// Class is the window class (WM_CLASS class part).
	Class string

	// Instance is the window instance (WM_CLASS instance part).
	Instance string

	// Name is the window title.
	Name string

	// Role is the window role (WM_WINDOW_ROLE).
	Role string

	// Type is the window's classification.
	Type WindowType

	// Focused reports whether the window currently has input focus.
	Focused bool

	// Fullscreen reports whether the window covers the whole screen.
	Fullscreen bool
}
