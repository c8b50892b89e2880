package gen

import (
	"github.com/dave/jennifer/jen"
)

// genBuilder emits the companion builder type, its constructor and one
// setter per field. Every field is held in a presence box (a pointer), so
// an unset field is distinguishable from a field set to its zero value.
func genBuilder(f *jen.File, t *Type) {
	name := t.BuilderName()
	rcv := t.BuilderReceiver()

	f.Commentf("%s builds %s values field by field.", name, t.Name)
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, fl := range t.Fields {
			g.Id(fl.StructField()).Op("*").Add(typeCode(fl.Type))
		}
	})

	f.Commentf("New%s returns a builder with all fields unset.", name)
	f.Func().Id("New" + name).Params().Op("*").Id(name).Block(
		jen.Return(jen.Op("&").Id(name).Values()),
	)

	for _, fl := range t.Fields {
		f.Commentf("%s sets the %s of the %s under construction. Setting a field again overwrites the previous value.", fl.Setter(), fl.Name, t.Name)
		f.Func().Params(jen.Id(rcv).Op("*").Id(name)).Id(fl.Setter()).Params(jen.Id("v").Add(typeCode(fl.Type))).Op("*").Id(name).Block(
			jen.Id(rcv).Dot(fl.StructField()).Op("=").Op("&").Id("v"),
			jen.Return(jen.Id(rcv)),
		)
	}
}
