package webgateway

import (
	"html/template"
	"net/http"

	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/wasteworks/erpadmin/gateway"
	"github.com/wasteworks/erpadmin/tokenstore"
)

var loginTmpl = template.Must(template.New("login").Parse(`<!doctype html>
<html>
<head><title>ERP Admin Login</title></head>
<body>
<h1>ERP Admin</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/auth/login">
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
</body>
</html>`))

// loginForm renders the login page.
func (s *Server) loginForm() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		return s.renderLogin(w, "")
	})
}

func (s *Server) renderLogin(w http.ResponseWriter, errMsg string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginTmpl.Execute(w, struct{ Error string }{Error: errMsg}); err != nil {
		return errors.Wrap(err, "template.Template.Execute()")
	}

	return nil
}

// login authenticates the form credentials against the backend and
// seals the returned token pair into the credential cookie.
func (s *Server) login() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := ccc.StartTrace(r.Context())
		defer span.End()

		if err := r.ParseForm(); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewBadRequestMessageWithError(err, "invalid form"))
		}

		creds := gateway.Credentials{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}

		store := &tokenstore.Memory{}
		if _, err := s.client(store).Login(ctx, creds); err != nil {
			// Mirror the backend's status. A transport failure has no
			// upstream verdict, so it reads as a bad gateway.
			status := http.StatusBadGateway
			msg := "Login failed"
			if apiErr, ok := gateway.AsError(err); ok {
				status = apiErr.StatusCode
				msg = apiErr.Message
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			if rerr := s.renderLogin(w, msg); rerr != nil {
				return rerr
			}
			if status == http.StatusUnauthorized {
				return httpio.NewUnauthorizedMessageWithError(err, msg)
			}

			return errors.Wrap(err, "gateway.Client.Login()")
		}

		pair, ok := store.Get()
		if !ok {
			return httpio.NewEncoder(w).InternalServerErrorMessage(ctx, "login response carried no tokens")
		}
		if err := s.cookies.writePair(w, pair); err != nil {
			return httpio.NewEncoder(w).InternalServerErrorWithError(ctx, err)
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)

		return nil
	})
}

// logout invalidates the session upstream, best effort, and clears the
// credential cookie regardless of the outcome.
func (s *Server) logout() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := ccc.StartTrace(r.Context())
		defer span.End()

		store := &tokenstore.Memory{}
		if pair, ok := s.cookies.readPair(r); ok {
			if err := store.Set(pair); err != nil {
				return httpio.NewEncoder(w).InternalServerErrorWithError(ctx, err)
			}
			if err := s.client(store).Logout(ctx); err != nil {
				logger.Req(r).Error(errors.Wrap(err, "gateway.Client.Logout()"))
			}
		}

		s.cookies.clearPair(w)
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)

		return nil
	})
}
