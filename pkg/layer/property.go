package layer

// Definition describes how a layer type exposes one property. Definitions
// are supplied once, when the layer type's registry is built; the layer
// never synthesizes storage or behavior beyond what is declared here.
type Definition struct {
	// Animatable marks a property the host animates natively. Natively
	// animatable properties are the only valid reference properties for a
	// [Bridge].
	Animatable bool

	// AffectsRender marks a property whose changes require a redraw. The
	// layer raises its needs-display flag whenever such a property changes
	// or animates.
	AffectsRender bool

	// Default is the initial model value. Nil means the property starts
	// unset, which getters must report as "no value" rather than a zero
	// value.
	Default any
}

// Property identifies one layer property. Identity is the pointer, resolved
// at registration time; the name exists only for logging and boundaries
// that demand a string, never for dispatch.
type Property struct {
	name string
	def  Definition
}

// PropertyName returns the boundary name of the property.
func (p *Property) PropertyName() string { return p.name }

// Animatable reports whether the host animates this property natively.
func (p *Property) Animatable() bool { return p.def.Animatable }

// AffectsRender reports whether changes to this property require a redraw.
func (p *Property) AffectsRender() bool { return p.def.AffectsRender }

// Registry is the property table for one layer type. Build it once at type
// definition time and share it across every instance of that type.
type Registry struct {
	props []*Property
}

// NewRegistry creates an empty property registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Define registers a property with the given definition and returns its
// identifier. Defining two properties with the same name is a registration
// mistake; the second definition wins lookups by name but both identifiers
// stay distinct.
func (r *Registry) Define(name string, def Definition) *Property {
	p := &Property{name: name, def: def}
	r.props = append(r.props, p)
	return p
}

// Properties returns the registered properties in definition order.
func (r *Registry) Properties() []*Property {
	return r.props
}
