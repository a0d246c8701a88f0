// Package mail sends outgoing email.
//
// The contact module hands a Message to the Mail interface; SMTP is the only
// transport and it composes plain-text, HTML or multipart/alternative bodies.
package mail
