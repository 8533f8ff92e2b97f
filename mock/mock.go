// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../session_iface.go -destination mock_erpadmin/mock_session_iface.go
//go:generate mockgen -source ../tokenstore/tokenstore.go -destination mock_tokenstore/mock_tokenstore.go
