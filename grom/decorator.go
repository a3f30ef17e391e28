package grom

// Decorator attaches convenience accessors to a node after it is read. The
// returned node replaces the input; returning nil keeps the input node.
type Decorator interface {
	Decorate(*Node) (*Node, error)
}

// DecoratorFunc adapts a function to a Decorator.
type DecoratorFunc func(*Node) (*Node, error)

// Decorate calls the underlying function.
func (f DecoratorFunc) Decorate(n *Node) (*Node, error) { return f(n) }

// ChainDecorators applies decorators in order, feeding each the previous
// result. The first error stops the chain.
func ChainDecorators(decorators ...Decorator) Decorator {
	return DecoratorFunc(func(n *Node) (*Node, error) {
		current := n
		for _, d := range decorators {
			if d == nil {
				continue
			}
			next, err := d.Decorate(current)
			if err != nil {
				return nil, err
			}
			if next != nil {
				current = next
			}
		}
		return current, nil
	})
}

// AliasDecorator adds alias names per node type. The outer key is a type IRI
// (or BlankType), the inner map goes from alias to stored attribute name.
//
//	grom.AliasDecorator{
//		"http://id.ukpds.org/schema/Person": {
//			"given_name": "personGivenName",
//		},
//	}
type AliasDecorator map[string]map[string]string

// Decorate adds every alias registered for any type in the node's type set.
func (d AliasDecorator) Decorate(n *Node) (*Node, error) {
	for _, typ := range n.TypeSet() {
		for alias, target := range d[typ] {
			n.Alias(alias, target)
		}
	}
	return n, nil
}

// AccessorDecorator adds derived accessors per node type, keyed like
// AliasDecorator.
type AccessorDecorator map[string]map[string]Accessor

// Decorate adds every accessor registered for any type in the node's type set.
func (d AccessorDecorator) Decorate(n *Node) (*Node, error) {
	for _, typ := range n.TypeSet() {
		for name, accessor := range d[typ] {
			n.AddAccessor(name, accessor)
		}
	}
	return n, nil
}
