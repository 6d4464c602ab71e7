package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Loader --dir ../domain/league --output domain/league --outpkg leaguemock --filename loader_mock.go
