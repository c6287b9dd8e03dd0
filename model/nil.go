package model

// Nil is a model that represents an empty object, used by operations
// that take no body or return nothing.
type Nil struct {
	Object
}

var _ Entity = Nil{}

func (n Nil) Schema() []byte {
	return []byte(`
		{
			"type":"object",
			"properties":{},
			"required": []
		}`,
	)
}

func (n Nil) Example() []byte {
	return []byte(`{}`)
}

func (n Nil) Name() string {
	return "Nil"
}

func (n Nil) Shape() Shape {
	return Shape{Name: n.Name()}
}

func (n Nil) Validate() error {
	return nil
}
