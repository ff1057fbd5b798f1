package pages

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorMessage is the body of the error page.
func ErrorMessage(status int, message string) templ.Component {
	if message == "" {
		message = http.StatusText(status)
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="empty error-page"><h1>`+strconv.Itoa(status)+`</h1><p>`+
			templ.EscapeString(message)+`</p><p><a href="/">Back to home</a></p></section>`)
		return err
	})
}
