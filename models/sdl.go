package models

import (
	"sort"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// SchemaDocument describes the object types of schema as an SDL document,
// roots first and the rest by name. Introspection and scalar types are left
// out.
func SchemaDocument(schema graphql.Schema) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	var roots []*graphql.Object
	if q := schema.QueryType(); q != nil {
		roots = append(roots, q)
	}
	if m := schema.MutationType(); m != nil {
		roots = append(roots, m)
	}
	seen := map[string]bool{}
	for _, o := range roots {
		seen[o.Name()] = true
		doc.Definitions = append(doc.Definitions, objectDefinition(o))
	}

	var names []string
	for name, t := range schema.TypeMap() {
		if _, ok := t.(*graphql.Object); ok && !seen[name] && !strings.HasPrefix(name, "__") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Definitions = append(doc.Definitions, objectDefinition(schema.TypeMap()[name].(*graphql.Object)))
	}
	return doc
}

func PrintSchema(schema graphql.Schema) string {
	var sb strings.Builder
	formatter.NewFormatter(&sb).FormatSchemaDocument(SchemaDocument(schema))
	return sb.String()
}

func objectDefinition(o *graphql.Object) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Object,
		Name:        o.Name(),
		Description: o.Description(),
	}
	fields := o.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := fields[name]
		fd := &ast.FieldDefinition{
			Name:        f.Name,
			Description: f.Description,
			Type:        astType(f.Type),
		}
		args := append([]*graphql.Argument(nil), f.Args...)
		sort.Slice(args, func(i, j int) bool { return args[i].Name() < args[j].Name() })
		for _, a := range args {
			fd.Arguments = append(fd.Arguments, &ast.ArgumentDefinition{
				Name:        a.Name(),
				Description: a.Description(),
				Type:        astType(a.Type),
			})
		}
		def.Fields = append(def.Fields, fd)
	}
	return def
}

func astType(t graphql.Type) *ast.Type {
	switch v := t.(type) {
	case *graphql.NonNull:
		inner := astType(v.OfType)
		inner.NonNull = true
		return inner
	case *graphql.List:
		return ast.ListType(astType(v.OfType), nil)
	default:
		return ast.NamedType(t.Name(), nil)
	}
}
