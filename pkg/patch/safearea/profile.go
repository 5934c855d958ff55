// Package safearea implements the safe-area bottom padding transforms for
// React Native screen files. The patcher inserts the hook import, the spacing
// import, the inset variables and the style merge; the cleaner collapses the
// duplicate padding objects that repeated patch runs leave behind.
package safearea

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Profile describes the source conventions the transforms look for and emit.
// The zero value is not usable; start from DefaultProfile.
type Profile struct {
	// BaseModule is the UI framework module whose import anchors the hook import.
	BaseModule string `json:"base_module" yaml:"base_module" mapstructure:"base_module" validate:"required,modpath"`

	// SafeAreaModule provides the insets hook.
	SafeAreaModule string `json:"safe_area_module" yaml:"safe_area_module" mapstructure:"safe_area_module" validate:"required,modpath"`

	// SafeAreaHook is the hook name. Its presence anywhere in a document
	// suppresses the hook import.
	SafeAreaHook string `json:"safe_area_hook" yaml:"safe_area_hook" mapstructure:"safe_area_hook" validate:"required,jsident"`

	// DesignSystemModule exports the spacing scale.
	DesignSystemModule string `json:"design_system_module" yaml:"design_system_module" mapstructure:"design_system_module" validate:"required,modpath"`

	// ColorsModule is the sibling import used as a fallback anchor for a new
	// spacing import.
	ColorsModule string `json:"colors_module" yaml:"colors_module" mapstructure:"colors_module" validate:"required,modpath"`

	// SpacingSymbol is the symbol imported from DesignSystemModule.
	SpacingSymbol string `json:"spacing_symbol" yaml:"spacing_symbol" mapstructure:"spacing_symbol" validate:"required,jsident"`

	// SpacingToken is the key of the spacing scale added to the inset.
	SpacingToken string `json:"spacing_token" yaml:"spacing_token" mapstructure:"spacing_token" validate:"required,jsident"`

	// InsetsVar binds the hook result.
	InsetsVar string `json:"insets_var" yaml:"insets_var" mapstructure:"insets_var" validate:"required,jsident"`

	// PadVar binds the computed bottom padding. Its presence anywhere in a
	// document suppresses the variable injection.
	PadVar string `json:"pad_var" yaml:"pad_var" mapstructure:"pad_var" validate:"required,jsident"`

	// StyleAttr is the content-style attribute that receives the padding.
	StyleAttr string `json:"style_attr" yaml:"style_attr" mapstructure:"style_attr" validate:"required,jsident"`

	// PadKey is the style key of the padding object.
	PadKey string `json:"pad_key" yaml:"pad_key" mapstructure:"pad_key" validate:"required,jsident"`

	// Indent prefixes each injected statement.
	Indent string `json:"indent" yaml:"indent" mapstructure:"indent" validate:"blank"`
}

// DefaultProfile returns the conventions of the Expo router screens the tool
// was written for.
func DefaultProfile() Profile {
	return Profile{
		BaseModule:         "react-native",
		SafeAreaModule:     "react-native-safe-area-context",
		SafeAreaHook:       "useSafeAreaInsets",
		DesignSystemModule: "../../constants/DesignSystem",
		ColorsModule:       "../../constants/Colors",
		SpacingSymbol:      "spacing",
		SpacingToken:       "lg",
		InsetsVar:          "insets",
		PadVar:             "bottomPad",
		StyleAttr:          "contentContainerStyle",
		PadKey:             "paddingBottom",
		Indent:             "  ",
	}
}

// Merge overlays the non-empty fields of other onto a copy of p.
func (p Profile) Merge(other Profile) Profile {
	merged := p
	overlay := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	overlay(&merged.BaseModule, other.BaseModule)
	overlay(&merged.SafeAreaModule, other.SafeAreaModule)
	overlay(&merged.SafeAreaHook, other.SafeAreaHook)
	overlay(&merged.DesignSystemModule, other.DesignSystemModule)
	overlay(&merged.ColorsModule, other.ColorsModule)
	overlay(&merged.SpacingSymbol, other.SpacingSymbol)
	overlay(&merged.SpacingToken, other.SpacingToken)
	overlay(&merged.InsetsVar, other.InsetsVar)
	overlay(&merged.PadVar, other.PadVar)
	overlay(&merged.StyleAttr, other.StyleAttr)
	overlay(&merged.PadKey, other.PadKey)
	overlay(&merged.Indent, other.Indent)
	return merged
}

var (
	jsIdentPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	validate       = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("jsident", func(fl validator.FieldLevel) bool {
		return jsIdentPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("modpath", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.TrimSpace(s) == s && !strings.ContainsAny(s, "'\"`\n")
	})
	_ = v.RegisterValidation("blank", func(fl validator.FieldLevel) bool {
		return strings.Trim(fl.Field().String(), " \t") == ""
	})
	return v
}

// Validate checks that every field can be embedded in the generated code and
// patterns.
func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// padObject renders the inline style fragment, e.g. "{ paddingBottom: bottomPad }".
func (p Profile) padObject() string {
	return "{ " + p.PadKey + ": " + p.PadVar + " }"
}

// safeAreaImport renders the hook import line.
func (p Profile) safeAreaImport() string {
	return "import { " + p.SafeAreaHook + " } from '" + p.SafeAreaModule + "';"
}

// spacingImport renders a spacing-only design-system import line.
func (p Profile) spacingImport() string {
	return "import { " + p.SpacingSymbol + " } from '" + p.DesignSystemModule + "';"
}

// padVars renders the two injected statements, each on its own line ending
// in eol.
func (p Profile) padVars(eol string) string {
	var sb strings.Builder
	sb.WriteString(eol)
	sb.WriteString(p.Indent + "const " + p.InsetsVar + " = " + p.SafeAreaHook + "();" + eol)
	sb.WriteString(p.Indent + "const " + p.PadVar + " = " + p.InsetsVar + ".bottom + " + p.SpacingSymbol + "." + p.SpacingToken + ";" + eol)
	return sb.String()
}
