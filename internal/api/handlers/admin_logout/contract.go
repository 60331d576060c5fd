package admin_logout

import "context"

type AdminService interface {
	Logout(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
