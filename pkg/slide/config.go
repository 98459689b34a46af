package slide

type Option func(*Processor)

func WithStyles(styles Styles) Option {
	return func(p *Processor) {
		p.styles = styles
	}
}

func WithSize(width, height int) Option {
	return func(p *Processor) {
		p.width = width
		p.height = height
	}
}
