package xls

import "github.com/tsawler/htmltable/model"

// MSONumberFormats maps mso-number-format declarations, exactly as
// written by Office HTML export (backslash escapes included), to column
// types. The map is configuration and must not be mutated.
var MSONumberFormats = map[string]model.Type{
	`0`:              model.Number(),
	`0\.0`:           model.Number(),
	`0\.00`:          model.Number(),
	`0\.000`:         model.Number(),
	`0\.0000`:        model.Number(),
	`0\.E+00`:        model.Number(),
	`0%`:             model.Number(),
	`Percent`:        model.Number(),
	`\#\ ?\/?`:       model.Number(),
	`\#\ ??\/??`:     model.Number(),
	`\#\ ???\/???`:   model.Number(),
	`Short Date`:     model.Date("02/01/2006"),
	`Medium Date`:    model.Date("02-Jan-06"),
	`Long Date`:      model.Date(""),
	`Short Time`:     model.DateTime("15:04"),
	`Medium Time`:    model.DateTime("03:04 PM"),
	`Long Time`:      model.DateTime("15:04:05"),
	`\@`:             model.Text(),
}

// TypeForFormat returns the column type for an mso-number-format
// declaration. The override map, when non-nil, takes precedence over the
// built-in table. Unknown and empty declarations fall back to text.
func TypeForFormat(format string, override map[string]model.Type) model.Type {
	if t, ok := override[format]; ok {
		return t
	}
	if t, ok := MSONumberFormats[format]; ok {
		return t
	}
	return model.Text()
}
