package controller

// Navigator abstracts page navigation so controllers stay independent of the
// surrounding shell.
type Navigator interface {
	Navigate(route string)
}

type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) {
	f(route)
}
