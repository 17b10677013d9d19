package layouts

// NavTab is one entry of the tab navigation bar.
type NavTab struct {
	ID          string
	Label       string
	Description string
	Icon        string // icon handle, emitted as data-icon for the client-side icon set
	Href        string
}

// AppLayoutData is passed to AppLayout to configure the page shell.
type AppLayoutData struct {
	Title          string
	CompanyName    string
	Logo           string
	PrimaryColor   string
	SecondaryColor string
	Username       string
	Tabs           []NavTab
	ActiveNav      string // id of the highlighted tab
	FlashMsg       string
	FlashKind      string // "success", "error", "warning", "info"
}
