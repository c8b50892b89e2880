package gen

import (
	"github.com/dave/jennifer/jen"
)

// genValidator emits the validating Build constructor. Required fields are
// checked for presence in declaration order and the first missing one
// fails the build; defaultable fields resolve to their zero value.
func genValidator(f *jen.File, t *Type) {
	rcv := t.BuilderReceiver()
	f.Commentf("Build validates the collected fields and constructs a new %s.", t.Name)
	f.Func().Params(jen.Id(rcv).Op("*").Id(t.BuilderName())).Id("Build").Params().Params(jen.Op("*").Id(t.Name), jen.Error()).BlockFunc(func(g *jen.Group) {
		for _, fl := range t.Fields {
			if fl.Defaultable {
				continue
			}
			g.If(jen.Id(rcv).Dot(fl.StructField()).Op("==").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual(buildgenPkg, "NewMissingFieldError").Call(jen.Lit(t.Name), jen.Lit(fl.Name))),
			)
		}
		for _, fl := range t.Fields {
			if !fl.Defaultable {
				continue
			}
			g.Var().Id(fl.StructField()).Add(typeCode(fl.Type))
			g.If(jen.Id(rcv).Dot(fl.StructField()).Op("!=").Nil()).Block(
				jen.Id(fl.StructField()).Op("=").Op("*").Id(rcv).Dot(fl.StructField()),
			)
		}
		g.Return(jen.Op("&").Id(t.Name).Values(jen.DictFunc(func(d jen.Dict) {
			for _, fl := range t.Fields {
				if fl.Defaultable {
					d[jen.Id(fl.StructField())] = jen.Id(fl.StructField())
				} else {
					d[jen.Id(fl.StructField())] = jen.Op("*").Id(rcv).Dot(fl.StructField())
				}
			}
		})), jen.Nil())
	})
}
