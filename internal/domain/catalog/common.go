package catalog

import "github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"

// Image is a resolved image reference.
type Image struct {
	URL         string
	ContentType string
	Size        int64
}

// Common holds the properties shared by groups and items. Every property
// publishes its name to OnPropertyChanged listeners when written. Image is
// resolved lazily from its path on first use.
type Common struct {
	props observable.PropertyNotifier

	UniqueID    observable.Field[string]
	Title       observable.Field[string]
	Subtitle    observable.Field[string]
	Description observable.Field[string]
	Image       observable.Lazy[Image]
}

// init wires every cell to c's notifier. c must not be copied afterwards.
func (c *Common) init(uniqueID, title, subtitle, imagePath, description string) {
	c.UniqueID = observable.NewField(&c.props, "UniqueID", uniqueID)
	c.Title = observable.NewField(&c.props, "Title", title)
	c.Subtitle = observable.NewField(&c.props, "Subtitle", subtitle)
	c.Description = observable.NewField(&c.props, "Description", description)
	c.Image = observable.NewLazy[Image](&c.props, "Image", imagePath)
}

// OnPropertyChanged registers fn for every effective property write.
func (c *Common) OnPropertyChanged(fn func(name string)) *observable.Subscription {
	return c.props.OnPropertyChanged(fn)
}

// String returns the title.
func (c *Common) String() string {
	return c.Title.Get()
}

func (c *Common) image() (path string, img *Image) {
	if v, ok := c.Image.Resolved(); ok {
		img = &v
	}
	return c.Image.Path(), img
}
