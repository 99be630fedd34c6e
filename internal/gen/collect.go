// Package gen collects property paths from struct declarations and renders them as
// Go constants. It backs the fluentgen command.
package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"reflect"
	"sort"
	"strings"

	"github.com/reoring/fluentval/shadow"
)

const _maxDepth = 32

// PathDef is one generated constant.
type PathDef struct {
	Const string // e.g. UserAddressCity
	Path  string // e.g. address.city
}

// TypeDef groups the paths of one root struct type.
type TypeDef struct {
	Name  string
	Paths []PathDef
}

// Package is the parsed form of one Go package directory.
type Package struct {
	Name    string
	structs map[string]*ast.StructType
}

// ParseDir parses the non-test Go files of dir.
func ParseDir(dir string) (*Package, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, 0)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("parse %s: no Go package found", dir)
	}
	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 1 {
		return nil, fmt.Errorf("parse %s: multiple packages %v", dir, names)
	}
	p := &Package{Name: names[0], structs: map[string]*ast.StructType{}}
	for _, f := range pkgs[names[0]].Files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name == nil || ts.TypeParams != nil {
					continue
				}
				if st, ok := ts.Type.(*ast.StructType); ok && st.Fields != nil {
					p.structs[ts.Name.Name] = st
				}
			}
		}
	}
	return p, nil
}

// Structs lists the struct type names declared in the package.
func (p *Package) Structs() []string {
	out := make([]string, 0, len(p.structs))
	for name := range p.structs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Collect returns the property paths of typeName using the same naming rules as
// shadow.ResolveStructKey. Struct types of the same package are followed through
// fields and pointers; slices, maps and types of other packages are leaves.
func (p *Package) Collect(typeName string) (TypeDef, error) {
	st, ok := p.structs[typeName]
	if !ok {
		return TypeDef{}, fmt.Errorf("type %s: not a struct type of package %s", typeName, p.Name)
	}
	c := &collector{pkg: p, visiting: map[string]bool{typeName: true}}
	c.walk(st, typeName, "", 0)
	return TypeDef{Name: typeName, Paths: c.out}, nil
}

type collector struct {
	pkg      *Package
	visiting map[string]bool
	seen     map[string]bool
	out      []PathDef
}

func (c *collector) add(constName, path string) {
	if c.seen == nil {
		c.seen = map[string]bool{}
	}
	if c.seen[constName] {
		return
	}
	c.seen[constName] = true
	c.out = append(c.out, PathDef{Const: constName, Path: path})
}

func (c *collector) walk(st *ast.StructType, constPrefix, pathPrefix string, depth int) {
	if depth > _maxDepth {
		return
	}
	for _, field := range st.Fields.List {
		var tag reflect.StructTag
		if field.Tag != nil {
			tag = reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		}
		if len(field.Names) == 0 {
			c.embedded(field, tag, constPrefix, pathPrefix, depth)
			continue
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			key := shadow.ResolveStructKey(reflect.StructField{Name: name.Name, Tag: tag})
			if key == "" || key == "-" {
				continue
			}
			constName := constPrefix + name.Name
			path := shadow.JoinPath(pathPrefix, key)
			c.add(constName, path)
			c.descend(field.Type, constName, path, depth)
		}
	}
}

// embedded flattens an untagged embedded struct of the package into its parent.
// A tagged one is a regular field named by its tag.
func (c *collector) embedded(field *ast.Field, tag reflect.StructTag, constPrefix, pathPrefix string, depth int) {
	typeName := localTypeName(field.Type)
	if typeName == "" || !ast.IsExported(typeName) {
		return
	}
	sf := reflect.StructField{Name: typeName, Tag: tag, Anonymous: true}
	key := shadow.ResolveStructKey(sf)
	if key == "-" {
		return
	}
	if shadow.HasExplicitKey(sf) {
		constName := constPrefix + typeName
		path := shadow.JoinPath(pathPrefix, key)
		c.add(constName, path)
		c.descend(field.Type, constName, path, depth)
		return
	}
	if st, ok := c.pkg.structs[typeName]; ok && !c.visiting[typeName] {
		c.visiting[typeName] = true
		c.walk(st, constPrefix, pathPrefix, depth+1)
		delete(c.visiting, typeName)
	}
}

func (c *collector) descend(expr ast.Expr, constPrefix, pathPrefix string, depth int) {
	typeName := localTypeName(expr)
	if typeName == "" || c.visiting[typeName] {
		return
	}
	st, ok := c.pkg.structs[typeName]
	if !ok {
		return
	}
	c.visiting[typeName] = true
	c.walk(st, constPrefix, pathPrefix, depth+1)
	delete(c.visiting, typeName)
}

// localTypeName returns the name of a package-local named type, looking through
// pointers. Slices, maps, selectors and inline structs yield "".
func localTypeName(expr ast.Expr) string {
	for {
		switch t := expr.(type) {
		case *ast.Ident:
			return t.Name
		case *ast.StarExpr:
			expr = t.X
		case *ast.ParenExpr:
			expr = t.X
		default:
			return ""
		}
	}
}
