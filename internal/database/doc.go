// Package database provides the data access layer for jumpdb.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── directories/     # Directory records (path, rank, last access)
//	└── imports/         # Import session history
//
// # Usage
//
//	db, err := database.NewDatabase("./jumpdb.db")
//	defer db.Close()
//
//	dirsRepo := directories.NewRepository(db.DB)
//	importsRepo := imports.NewRepository(db.DB)
//
// Commands never mutate directories through the repository one row at a
// time. They load every record into a dirstore.Store, mutate it in memory and
// write it back with Repository.SaveAll.
package database
