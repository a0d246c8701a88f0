// Package validator checks tagged structs and reports failures as a
// snake_case field to message map.
//
// Besides the stock go-playground rules it registers "looseemail", the
// contact form's email rule: an '@' and a '.' anywhere in the value.
package validator
