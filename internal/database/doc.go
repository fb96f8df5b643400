// Package database is the SurrealDB session behind the surreal cache backend.
//
// The ledger itself lives in memory; only cached key-value pairs reach the
// database. Query decodes every statement result as rows, and FirstRow and
// Exec cover the point lookups and writes the cache issues:
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "learnledger",
//	    Database:  "main",
//	    User:      "root",
//	    Password:  "root",
//	})
//	if err := db.Connect(ctx); err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	results, err := db.Query(ctx, "SELECT value FROM type::record($tb, $key)", vars)
//	row, err := database.FirstRow(results) // ErrNotFound when empty
//
// Errors wrap ErrConnection, ErrQuery or ErrNotFound.
package database
