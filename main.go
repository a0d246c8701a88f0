package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/folio/internal/app"
)

// @title           Folio API
// @version         1.0
// @description     Folio serves portfolio content and accepts contact form messages.
// @contact.name    Contact
// @contact.url     https://folio.dev/contact
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
