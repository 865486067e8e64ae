package components

// AlertProps configures an alert box or alert-list item.
type AlertProps struct {
	Variant string
	Message string
}

// Alert renders a standalone alert.
func (l *Library) Alert(p AlertProps) (Fragment, error) {
	return l.execute("alert", p)
}

// AlertStack renders alerts in a vertical stack.
func (l *Library) AlertStack(alerts ...AlertProps) (Fragment, error) {
	return l.execute("alert-stack", alerts)
}

// AlertList renders flash messages the way the host application lists them.
func (l *Library) AlertList(alerts ...AlertProps) (Fragment, error) {
	return l.execute("alert-list", alerts)
}
