// Package ethrpc provides wallet account providers for the LearnLedger API.
//
// Client asks a wallet for its accounts over Ethereum JSON-RPC 2.0 with the
// eth_requestAccounts method. Static returns a fixed list and stands in for
// a wallet in development and tests.
//
//	provider := ethrpc.NewClient(ethrpc.Config{URL: "http://localhost:8545"})
//	accounts, err := provider.RequestAccounts(ctx)
//	if err != nil {
//	    var rpcErr *ethrpc.RPCError
//	    if errors.As(err, &rpcErr) && rpcErr.Code == ethrpc.CodeUserRejected {
//	        // The user declined the connection
//	    }
//	}
//
// No transactions are ever signed or submitted.
package ethrpc
