package service

// AuthServiceWrapper decorates an AuthService with extra behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// RouteServiceWrapper decorates a RouteService with extra behavior such as
// validation.
type RouteServiceWrapper interface {
	Wrap(RouteService) RouteService
}
