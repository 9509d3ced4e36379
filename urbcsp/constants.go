// Package urbcsp defines shared constants for instance generation.
package urbcsp

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors with their origin.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodValidate is the canonical name for ParamSet.Validate.
	MethodValidate = "Validate"
	// MethodResolve is the canonical name for Params.Resolve.
	MethodResolve = "Resolve"
	// MethodStructure is the canonical name for the constrained-pair sampler.
	MethodStructure = "StructureSampler"
	// MethodRelations is the canonical name for the nogood table sampler.
	MethodRelations = "RelationGenerator"
)

//-----------------------------------------------------------------------------
// Document identity
//-----------------------------------------------------------------------------

// Algo is the value of meta.algo in every generated document.
const Algo = "urbcsp"

// idFormat renders meta.id; fields follow the n, d, c, t, s, i, k order.
const idFormat = "urbcsp/n%dd%dc%dt%ds%di%dk%d"

// Keys of meta.params, in emission order.
const (
	KeyN = "n"
	KeyD = "d"
	KeyC = "c"
	KeyT = "t"
	KeyS = "s"
	KeyI = "i"
	KeyK = "k"
)

//-----------------------------------------------------------------------------
// Parameter bounds
//-----------------------------------------------------------------------------

// MinVars is the smallest admissible n; one variable has no pairs to constrain.
const MinVars = 2

// MinDomain is the smallest admissible d.
const MinDomain = 1

// MinTightness is the smallest admissible t.
const MinTightness = 1

// DomainGroup is the domain index every variable references under the
// single shared-domain model.
const DomainGroup = 0
