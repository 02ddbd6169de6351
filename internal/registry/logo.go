package registry

// Theme selects a colour scheme for logo markup.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Logo is either a SingleLogo or a ThemedLogo.
type Logo interface {
	Markup(Theme) string
	sealed()
}

// SingleLogo is markup used for every theme.
type SingleLogo string

// ThemedLogo carries separate marks for dark and light backgrounds.
type ThemedLogo struct {
	Dark  string
	Light string
}

func (l SingleLogo) Markup(Theme) string { return string(l) }

func (l ThemedLogo) Markup(t Theme) string {
	if t == Dark {
		return l.Dark
	}
	return l.Light
}

func (SingleLogo) sealed() {}
func (ThemedLogo) sealed() {}
