package vscode

import (
	"github.com/myrt-theme/myrt/internal/style"
	"github.com/myrt-theme/myrt/internal/tokens"
)

const (
	italic    = "italic"
	bold      = "bold"
	regular   = "regular"
	underline = "underline"
)

func rule(fontStyle, foreground string, scopes ...string) TokenColor {
	return TokenColor{
		Scope:    scopes,
		Settings: Settings{FontStyle: fontStyle, Foreground: foreground},
	}
}

func fill(foreground, background string, scopes ...string) TokenColor {
	return TokenColor{
		Scope:    scopes,
		Settings: Settings{Foreground: foreground, Background: background},
	}
}

// tokenColors returns the TextMate scope rules. Order matters: later rules
// win for equally specific scopes.
func tokenColors(t *tokens.Tree) []TokenColor {
	s := t.Scale
	x := t.Syntax
	pick := func(light, dark string) string {
		return style.Pair[string]{Light: light, Dark: dark}.Pick(t.Style)
	}
	editorFg := t.Component.Editor.Fg
	softPunct := pick(s.Gray[5], s.Gray[4])
	keywordRed := pick(s.Red[5], s.Red[6])
	purple := pick(s.Purple[5], s.Purple[6])

	rules := []TokenColor{
		rule(italic, x.Comment, "comment", "punctuation.definition.comment", "string.comment"),
		rule("", x.Variable, "entity.name", "meta.export.default", "meta.definition.variable"),
		rule("", x.Constant,
			"constant", "entity.name.constant", "meta.definition.variable", "variable.other.constant",
			"variable.other.enummember", "variable.language", "entity"),
		rule(italic, editorFg, "variable.parameter.function"),
		{
			Name:     "De-italic JSDoc variable",
			Scope:    Scopes{"entity.name.type.instance.jsdoc", "variable.other.jsdoc"},
			Settings: Settings{FontStyle: regular},
		},
		rule("", s.Blue[6], "entity.name.type.instance.jsdoc"),
		rule("", editorFg, "variable.other"),
		rule("", x.Decorator, "meta.decorator", "entity.name.decorator"),
		rule("", x.Tag, "entity.name.tag", "support.type.property-name.json"),
		rule("", x.Function,
			"entity.name.function", "support.function", "entity.name.function.templated",
			"entity.name.function.member.static", "entity.name.command.shell"),
		rule("", x.Variable, "entity.other.inherited-class"),
		rule(italic, x.Attribute, "entity.other.attribute-name"),
		rule(italic, s.Green[6],
			"entity.other.attribute-name.class.css", "entity.other.attribute-name.parent-selector-suffix.css",
			"entity.other.attribute-name.css"),
		rule(italic, purple,
			"entity.other.attribute-name.pseudo-class.css", "entity.other.pseudo-class.css",
			"entity.other.pseudo-element.css"),
		rule("", x.Keyword, "keyword"),
		rule(italic, x.Keyword,
			"storage.js", "storage.ts", "storage.type", "keyword.type.go", "keyword.control",
			"source.cpp keyword.other", "variable.language.self.rust", "source.rust keyword.other",
			"keyword.proto"),
		rule(italic, x.Keyword, "storage.modifier"),
		rule("", editorFg, "storage.modifier.package", "storage.modifier.import", "storage.type.java"),
		rule("", x.String, "string", "punctuation.definition.string", "string punctuation.section.embedded source"),
		rule("", x.Punctuation,
			"punctuation.definition.string", "punctuation.definition.string.begin",
			"punctuation.definition.string.end",
			"string.quoted.template punctuation.definition.string.begin",
			"string.quoted.template punctuation.definition.string.end",
			"punctuation.definition.tag", "punctuation.section.embedded.end",
			"punctuation.section.embedded.begin", "punctuation.definition.typeparameters",
			"punctuation.separator.comma", "punctuation.definition.table.inline.toml",
			"punctuation.definition.markdown", "punctuation.semi", "punctuation.comma",
			"keyword.operator.key-value.rust", "punctuation.brackets.angle", "punctuation.separator"),
		rule(regular, x.Punctuation, "punctuation.definition.heading"),
		rule("", pick(s.Gray[7], s.Gray[6]), "markup.fenced_code.block.markdown"),
		rule("", x.Punctuation,
			"source.json meta.mapping.key string punctuation.definition.string",
			"source.yaml meta.mapping.key string punctuation.definition.string"),
		rule("", x.Punctuation,
			"punctuation.support.type.property-name.begin.json",
			"punctuation.support.type.property-name.end.json",
			"source.json meta.mapping.key string.quoted.single.json punctuation.definition.string.begin",
			"source.json meta.mapping.key string.quoted.single.json punctuation.definition.string.end",
			"support.type.property-name.json punctuation.definition.string"),
		rule("", x.Identifier, "source.json meta.mapping.key string - punctuation"),
		rule("", x.Support, "support"),
		rule("", x.PropertyName, "meta.property-name"),
		rule("", x.Variable, "variable"),
		rule(italic, x.Identifier,
			"variable.language", "variable.parameter.function.language.special.self.python",
			"variable.parameter.function.language.special.cls.python"),
		rule(italic, s.Orange[6],
			"source.sass variable.other", "source.sass variable.sass", "source.scss variable.other",
			"source.scss variable.scss", "source.scss variable.sass", "source.css variable.other",
			"source.css variable.scss", "source.less variable.other", "source.less variable.other.less",
			"source.less variable.declaration.less"),
		rule(italic, x.Invalid, "invalid.broken"),
		rule(italic, x.Invalid, "invalid.deprecated"),
		rule(italic, x.Invalid, "invalid.illegal"),
		rule(italic, x.Invalid, "invalid.unimplemented"),
		{
			Scope: Scopes{"carriage-return"},
			Settings: Settings{
				FontStyle:  "italic underline",
				Background: keywordRed,
				Foreground: s.Gray[0],
				Content:    "^M",
			},
		},
		rule("", softPunct, "punctuation.terminator"),
		rule("", x.Invalid, "message.error"),
		rule("", x.Identifier, "string variable"),
		rule("", x.Regexp, "source.regexp", "string.regexp"),
		rule("", x.Regexp,
			"string.regexp.character-class", "string.regexp constant.character.escape",
			"string.regexp source.ruby.embedded", "string.regexp string.regexp.arbitrary-repitition"),
		rule("", x.Identifier, "entity.name.type.rust", "source.js entity.name.type", "entity.name.type"),
		rule(italic, "", "keyword.other.fn.rust"),
		rule("", x.Keyword, "entity.name.lifetime.rust"),
		rule("", editorFg, "meta.type_params.rust"),
		rule(italic, x.Identifier, "meta.annotation.rust", "variable.language.rust"),
		rule("", s.Green[6], "source.ansible entity.name.tag"),
		rule("", x.Identifier, "support.function.builtin.python", "meta.function-call.generic.python"),
		rule("", editorFg, "meta.function-call.python meta.function-call.arguments.python"),
		rule("", keywordRed,
			"keyword.declaration.class.ruby", "keyword.declaration.function.ruby",
			"keyword.declaration.namespace.ruby"),
		rule("", x.Identifier,
			"source.ruby variable.other.readwrite.instance.ruby",
			"source.ruby variable.other.readwrite.class.ruby"),
		rule("", s.Blue[6], "constant.other.elm"),
		rule("", x.Punctuation,
			"keyword.other.parenthesis.elm", "punctuation.definition.block.begin.svelte",
			"punctuation.definition.block.end.svelte"),
		rule(regular, x.Identifier, "storage.type.built-in", "storage.type.numeric", "source.go storage.type"),
		rule(regular, "", "storage.modifier.reference"),
		rule(bold, s.Green[6], "string.regexp constant.character.escape"),
		rule("", s.Green[6],
			"entity.name.tag.js.jsx", "entity.name.tag support.class.component",
			"source.vue support.class.component"),
		rule("", s.Orange[6], "entity.other.attribute-name.id.css"),
		rule("", s.Gray[6], "support.type.vendor-prefix.css"),
		rule("", s.Blue[6], "source.json meta.mapping.key string"),
		rule("", x.Keyword, "source.yaml meta.mapping.key string"),
		rule("", x.Muted, "entity.other.jinja2.delimiter"),
		rule("", x.Tag, "source.jinja2 variable.other.jinja2.block"),
		rule("", x.Variable, "source.jinja2 variable.other.jinja2"),
		rule("", s.Gray[6],
			"keyword.operator.heading.restructuredtext",
			"keyword.operator.table.row.restructuredtext keyword.operator.table.data.restructuredtext"),
		rule("", x.Identifier, "constant.other.citation.latex"),
		rule("", x.Muted, "support.constant.handlebars"),
		rule(italic, keywordRed, "entity.name.function.operator", "keyword.function", "keyword.package"),
		rule("", x.String, "entity.name.operator.custom-literal.string"),
		rule("", x.Identifier, "entity.name.operator.custom-literal.number"),
		rule("", s.Orange[6], "punctuation.section.embedded"),
		rule("", s.Blue[6], "support.constant"),
		rule("", s.Blue[6], "support.variable"),
		rule("", s.Blue[6], "meta.module-reference"),
		rule("", s.Orange[6], "punctuation.definition.list.begin.markdown"),
		rule(bold, s.Blue[6], "markup.heading", "markup.heading entity.name"),
		rule(italic, s.Green[6], "markup.quote"),
		rule("", s.Green[6],
			"support.type.property-name.toml", "support.type.property-name.array.toml",
			"support.type.property-name.table.toml", "keyword.other.definition.ini"),
		rule(italic, editorFg, "markup.italic"),
		rule(bold, editorFg, "markup.bold"),
		rule(underline, "", "markup.underline"),
		rule("strikethrough", "", "markup.strikethrough"),
		rule("", s.Blue[6], "markup.inline.raw"),
		fill(s.Red[7], s.Red[0], "markup.deleted", "meta.diff.header.from-file", "punctuation.definition.deleted"),
		fill(s.Green[6], s.Green[0], "markup.inserted", "meta.diff.header.to-file", "punctuation.definition.inserted"),
		fill(s.Orange[6], s.Orange[1], "markup.changed", "punctuation.definition.changed"),
		fill(s.Gray[1], s.Blue[6], "markup.ignored", "markup.untracked"),
		rule(bold, purple, "meta.diff.range"),
		rule("", s.Blue[6], "meta.diff.header"),
		rule(bold, s.Blue[6], "meta.separator"),
		rule("", s.Blue[6], "meta.output"),
		rule("", s.Gray[6],
			"brackethighlighter.tag", "brackethighlighter.curly", "brackethighlighter.round",
			"brackethighlighter.square", "brackethighlighter.angle", "brackethighlighter.quote"),
		rule("", softPunct,
			"source.json meta.mapping.key string.quoted.double.json punctuation.definition.string.begin",
			"source.json meta.mapping.key string.quoted.double.json punctuation.definition.string.end",
			"source.json meta.mapping.key string.quoted.single.json punctuation.definition.string.begin",
			"source.json meta.mapping.key string.quoted.single.json punctuation.definition.string.end",
			"support.type.property-name.json punctuation.definition.string",
			"punctuation.section.angle-brackets", "punctuation.eq.toml"),
		rule("", s.Blue[6],
			"support.type.property-name.json string.quoted.double.json - punctuation",
			"support.type.property-name.json string.quoted.single.json - punctuation",
			"source.json meta.mapping.key string.quoted.double.json - punctuation",
			"source.json meta.mapping.key string.quoted.single.json - punctuation",
			"source.json meta.object-literal.key string.quoted.double.json - punctuation",
			"source.json meta.object-literal.key string.quoted.single.json - punctuation"),
		rule("", softPunct,
			"support.type.property-name.json string.quoted.double.json punctuation.definition.string.begin",
			"support.type.property-name.json string.quoted.double.json punctuation.definition.string.end",
			"support.type.property-name.json string.quoted.single.json punctuation.definition.string.begin",
			"support.type.property-name.json string.quoted.single.json punctuation.definition.string.end",
			"source.json meta.object-literal.key string.quoted.double.json punctuation.definition.string.begin",
			"source.json meta.object-literal.key string.quoted.double.json punctuation.definition.string.end",
			"source.json meta.object-literal.key string.quoted.single.json punctuation.definition.string.begin",
			"source.json meta.object-literal.key string.quoted.single.json punctuation.definition.string.end"),
		rule("", x.Invalid, "brackethighlighter.unmatched"),
		rule(underline, s.Blue[8], "constant.other.reference.link", "string.other.link"),
		rule("", s.Blue[6], "entity.name.type.class"),
		rule("", s.Orange[6], "meta.function.definition.rust variable.other"),
		rule("", s.Gray[6], "meta.attribute.rust"),
		rule("", s.Orange[6], "meta.type.parameters.ts entity.name.type.parameter", "entity.name.type.ts"),
		rule("", s.Red[6], "keyword.other.crate.rust", "support.function.target.PHONY.makefile"),
		rule("", s.Orange[6], "constant.character.escape"),
		rule("", s.Purple[7], "entity.name.function.preprocessor", "source.c entity.name.function.preprocessor"),
	}
	return rules
}
