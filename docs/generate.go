package docs

//go:generate swag init -g cmd/server/main.go -d ../ -o ./ --outputTypes go
