// Package contactform implements the portfolio contact form submission
// lifecycle independently of the page it runs on.
//
// A Handler reads a Form, validates the Submission, hands it to a Strategy
// (Remote POST or Mailto handoff) and reports the outcome through Feedback.
// Every page element is injected as a small interface; package dom provides
// the browser implementations and tests provide in-memory ones.
package contactform
