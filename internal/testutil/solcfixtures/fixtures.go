// Package solcfixtures holds runtime bytecode of one small contract compiled
// by solc releases from different metadata eras.
package solcfixtures

import "github.com/ethereum/go-ethereum/common/hexutil"

// Contract is a compiled runtime bytecode sample and the compiler that built it.
type Contract struct {
	Name             string
	SolcVersion      string
	DeployedBytecode string
}

// Bytes decodes the deployed bytecode.
func (c Contract) Bytes() []byte {
	return hexutil.MustDecode(c.DeployedBytecode)
}

var (
	Solc0412 = Contract{
		Name:             "TestContract",
		SolcVersion:      "0.4.12",
		DeployedBytecode: "0x60606040526000357c0100000000000000000000000000000000000000000000000000000000900463ffffffff16806313bdfacd1461003e575b600080fd5b341561004957600080fd5b6100516100cd565b6040518080602001828103825283818151815260200191508051906020019080838360005b838110156100925780820151818401525b602081019050610076565b50505050905090810190601f1680156100bf5780820380516001836020036101000a031916815260200191505b509250505060405180910390f35b6100d5610176565b60018054600181600116156101000203166002900480601f01602080910402602001604051908101604052809291908181526020018280546001816001161561010002031660029004801561016b5780601f106101405761010080835404028352916020019161016b565b820191906000526020600020905b81548152906001019060200180831161014e57829003601f168201915b505050505090505b90565b6020604051908101604052806000815250905600a165627a7a723058201c0fc1b1566b6243fc07daa6a27c042ed8bdb3c0bbf4d9d2223339f21299056b0029",
	}
	Solc0426 = Contract{
		Name:             "TestContract",
		SolcVersion:      "0.4.26",
		DeployedBytecode: "0x608060405260043610610041576000357c0100000000000000000000000000000000000000000000000000000000900463ffffffff16806313bdfacd14610046575b600080fd5b34801561005257600080fd5b5061005b6100d6565b6040518080602001828103825283818151815260200191508051906020019080838360005b8381101561009b578082015181840152602081019050610080565b50505050905090810190601f1680156100c85780820380516001836020036101000a031916815260200191505b509250505060405180910390f35b606060018054600181600116156101000203166002900480601f01602080910402602001604051908101604052809291908181526020018280546001816001161561010002031660029004801561016e5780601f106101435761010080835404028352916020019161016e565b820191906000526020600020905b81548152906001019060200180831161015157829003601f168201915b50505050509050905600a165627a7a72305820b6817df49c1566ffc22f6e10f7b6810c64f515e307c157f5a240574f5ebb10c70029",
	}
	Solc058 = Contract{
		Name:             "TestContract",
		SolcVersion:      "0.5.8",
		DeployedBytecode: "0x608060405234801561001057600080fd5b506004361061002b5760003560e01c806313bdfacd14610030575b600080fd5b6100386100b3565b6040518080602001828103825283818151815260200191508051906020019080838360005b8381101561007857808201518184015260208101905061005d565b50505050905090810190601f1680156100a55780820380516001836020036101000a031916815260200191505b509250505060405180910390f35b606060018054600181600116156101000203166002900480601f01602080910402602001604051908101604052809291908181526020018280546001816001161561010002031660029004801561014b5780601f106101205761010080835404028352916020019161014b565b820191906000526020600020905b81548152906001019060200180831161012e57829003601f168201915b505050505090509056fea165627a7a7230582002725dc23a155ea5da565f750797acdf177aed268ecad6dd082b0df02cbcbf4c0029",
	}
	Solc059 = Contract{
		Name:             "TestContract",
		SolcVersion:      "0.5.9",
		DeployedBytecode: "0x608060405234801561001057600080fd5b506004361061002b5760003560e01c806313bdfacd14610030575b600080fd5b6100386100b3565b6040518080602001828103825283818151815260200191508051906020019080838360005b8381101561007857808201518184015260208101905061005d565b50505050905090810190601f1680156100a55780820380516001836020036101000a031916815260200191505b509250505060405180910390f35b606060018054600181600116156101000203166002900480601f01602080910402602001604051908101604052809291908181526020018280546001816001161561010002031660029004801561014b5780601f106101205761010080835404028352916020019161014b565b820191906000526020600020905b81548152906001019060200180831161012e57829003601f168201915b505050505090509056fea265627a7a723058200e0c1f0b33a8f60309ea8686e3561e5e0a9619994463519a00809a5a51f1c53664736f6c63430005090032",
	}
	Solc060 = Contract{
		Name:             "TestContract",
		SolcVersion:      "0.6.0",
		DeployedBytecode: "0x608060405234801561001057600080fd5b506004361061002b5760003560e01c806313bdfacd14610030575b600080fd5b6100386100b3565b6040518080602001828103825283818151815260200191508051906020019080838360005b8381101561007857808201518184015260208101905061005d565b50505050905090810190601f1680156100a55780820380516001836020036101000a031916815260200191505b509250505060405180910390f35b606060018054600181600116156101000203166002900480601f01602080910402602001604051908101604052809291908181526020018280546001816001161561010002031660029004801561014b5780601f106101205761010080835404028352916020019161014b565b820191906000526020600020905b81548152906001019060200180831161012e57829003601f168201915b505050505090509056fea164736f6c6343000600000a",
	}
	Solc070 = Contract{
		Name:             "TestContract",
		SolcVersion:      "0.7.0",
		DeployedBytecode: "0x608060405234801561001057600080fd5b506004361061002b5760003560e01c806313bdfacd14610030575b600080fd5b6100386100b3565b6040518080602001828103825283818151815260200191508051906020019080838360005b8381101561007857808201518184015260208101905061005d565b50505050905090810190601f1680156100a55780820380516001836020036101000a031916815260200191505b509250505060405180910390f35b606060018054600181600116156101000203166002900480601f01602080910402602001604051908101604052809291908181526020018280546001816001161561010002031660029004801561014b5780601f106101205761010080835404028352916020019161014b565b820191906000526020600020905b81548152906001019060200180831161012e57829003601f168201915b505050505090509056fea2646970667358221220981f0e56fe0654616c8fd35f98d9ac6b2a7f0882184f93226486adfca553caef64736f6c63430007000033",
	}
)

// NoVersionField lists samples whose trailer predates the solc key.
func NoVersionField() []Contract {
	return []Contract{Solc0412, Solc0426, Solc058}
}

// WithVersionField lists samples whose trailer records the compiler version.
func WithVersionField() []Contract {
	return []Contract{Solc059, Solc060, Solc070}
}
