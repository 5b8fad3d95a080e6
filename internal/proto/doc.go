// Package proto holds the VoxKeeper gRPC contract generated from
// voxkeeper.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative voxkeeper.proto
