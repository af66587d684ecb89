package docblock

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

type (
	// TagValue is the interpreted value of a tag.
	//
	// It is one of [Text], [*Typed], [*Example], or [List].
	TagValue interface{ tagValue() }

	// Text is the value of a tag that carries plain text,
	// or no text at all for flag tags like @public.
	Text string

	// Typed is the value of a tag with an optional {type},
	// an optional name, and a description.
	//
	//	@param {string} name The name of the banana.
	//	@returns {boolean} Whether the banana is ripe.
	Typed struct {
		Type        string `json:"type,omitempty" yaml:"type,omitempty"`
		Name        string `json:"name,omitempty" yaml:"name,omitempty"`
		Description string `json:"description" yaml:"description"`

		// Optional is set for bracketed names like [name].
		Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`

		// Default is the default value in [name=default].
		Default string `json:"default,omitempty" yaml:"default,omitempty"`
	}

	// Example is the value of an @example tag.
	// Its content is code, and is never interpreted.
	Example struct {
		Content string `json:"content" yaml:"content"`
	}

	// List holds all occurrences of a repeatable tag
	// in source order.
	List []TagValue
)

var (
	_ TagValue = Text("")
	_ TagValue = (*Typed)(nil)
	_ TagValue = (*Example)(nil)
	_ TagValue = List(nil)
)

func (Text) tagValue()     {}
func (*Typed) tagValue()   {}
func (*Example) tagValue() {}
func (List) tagValue()     {}

// Tags maps tag names to their values.
type Tags map[string]TagValue

// Category determines how the text of a tag is interpreted.
type Category int

// Supported tag categories.
const (
	// Passthrough stores the text of the tag as-is.
	// Unknown tags use this category.
	Passthrough Category = iota

	// Flag is a boolean marker tag like @public.
	// Its text, usually empty, is stored as-is.
	Flag

	// Scalar stores the text of the tag
	// with runs of whitespace collapsed.
	Scalar

	// TypedValue parses "{type} description".
	TypedValue

	// NamedValue parses "{type} name description".
	NamedValue

	// Verbatim stores the text of the tag as an [Example].
	Verbatim
)

var _categoryNames = map[Category]string{
	Passthrough: "passthrough",
	Flag:        "flag",
	Scalar:      "scalar",
	TypedValue:  "typed",
	NamedValue:  "named",
	Verbatim:    "verbatim",
}

// String returns the name of the category.
func (c Category) String() string {
	if name, ok := _categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory parses the name of a category,
// as returned by [Category.String].
func ParseCategory(name string) (Category, error) {
	for c, n := range _categoryNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return Passthrough, errtrace.Errorf("unknown tag category %q", name)
}

// tagSpec describes how a known tag is handled.
type tagSpec struct {
	Category   Category
	Repeatable bool

	// InferName fills in a missing name
	// from the code following the block.
	InferName bool
}

var _tagSpecs = map[string]tagSpec{
	// Flags.
	"abstract":        {Category: Flag},
	"async":           {Category: Flag},
	"class":           {Category: Flag, InferName: true},
	"constructor":     {Category: Flag, InferName: true},
	"function":        {Category: Flag, InferName: true},
	"generator":       {Category: Flag},
	"global":          {Category: Flag},
	"hideconstructor": {Category: Flag},
	"ignore":          {Category: Flag},
	"inner":           {Category: Flag},
	"instance":        {Category: Flag},
	"interface":       {Category: Flag},
	"override":        {Category: Flag},
	"private":         {Category: Flag},
	"protected":       {Category: Flag},
	"public":          {Category: Flag},
	"readonly":        {Category: Flag},
	"static":          {Category: Flag},

	// Scalars.
	"access":     {Category: Scalar},
	"alias":      {Category: Scalar},
	"augments":   {Category: Scalar},
	"author":     {Category: Scalar, Repeatable: true},
	"borrows":    {Category: Scalar, Repeatable: true},
	"copyright":  {Category: Scalar},
	"deprecated": {Category: Scalar},
	"file":       {Category: Scalar},
	"kind":       {Category: Scalar},
	"lends":      {Category: Scalar},
	"license":    {Category: Scalar},
	"memberof":   {Category: Scalar},
	"mixes":      {Category: Scalar, Repeatable: true},
	"module":     {Category: Scalar},
	"name":       {Category: Scalar},
	"namespace":  {Category: Scalar},
	"requires":   {Category: Scalar, Repeatable: true},
	"see":        {Category: Scalar, Repeatable: true},
	"since":      {Category: Scalar},
	"summary":    {Category: Scalar},
	"tutorial":   {Category: Scalar, Repeatable: true},
	"version":    {Category: Scalar},

	// {type} description
	"returns": {Category: TypedValue},
	"throws":  {Category: TypedValue, Repeatable: true},
	"type":    {Category: TypedValue},
	"yields":  {Category: TypedValue, Repeatable: true},

	// {type} name description
	"callback": {Category: NamedValue},
	"const":    {Category: NamedValue, InferName: true},
	"enum":     {Category: NamedValue, InferName: true},
	"event":    {Category: NamedValue},
	"fires":    {Category: NamedValue, Repeatable: true},
	"listens":  {Category: NamedValue, Repeatable: true},
	"member":   {Category: NamedValue, InferName: true},
	"param":    {Category: NamedValue, Repeatable: true},
	"property": {Category: NamedValue, Repeatable: true},
	"typedef":  {Category: NamedValue, InferName: true},

	"example": {Category: Verbatim, Repeatable: true},
}

// Alternative spellings of tags, mapped to their canonical names.
var _tagAliases = map[string]string{
	"arg":       "param",
	"argument":  "param",
	"constant":  "const",
	"exception": "throws",
	"extends":   "augments",
	"func":      "function",
	"method":    "function",
	"prop":      "property",
	"return":    "returns",
	"var":       "member",
}

// canonicalTag returns the canonical name for a tag.
func canonicalTag(name string) string {
	if canon, ok := _tagAliases[name]; ok {
		return canon
	}
	return name
}
