package koios

import "context"

// Tip returns the latest block seen by the chain.
func (c *Client) Tip(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTip, nil, opts...)
}

// Genesis returns the genesis parameters used to start each era.
func (c *Client) Genesis(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointGenesis, nil, opts...)
}

// Totals returns circulating utxo, treasury, rewards, supply and reserves per epoch.
func (c *Client) Totals(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTotals, params, opts...)
}

// ParamUpdates lists all protocol parameter update proposals.
func (c *Client) ParamUpdates(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointParamUpdates, nil, opts...)
}

// ReserveWithdrawals lists withdrawals from reserves against stake accounts.
func (c *Client) ReserveWithdrawals(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointReserveWithdrawals, nil, opts...)
}

// TreasuryWithdrawals lists withdrawals from treasury against stake accounts.
func (c *Client) TreasuryWithdrawals(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTreasuryWithdrawals, nil, opts...)
}

// EpochInfo returns epoch information, all epochs when _epoch_no is absent.
func (c *Client) EpochInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointEpochInfo, params, opts...)
}

// EpochParams returns the protocol parameters of an epoch.
func (c *Client) EpochParams(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointEpochParams, params, opts...)
}

// EpochBlockProtocols returns the block protocol distribution of an epoch.
func (c *Client) EpochBlockProtocols(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointEpochBlockProtocols, params, opts...)
}

// Blocks lists summarised block details, latest first.
func (c *Client) Blocks(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointBlocks, nil, opts...)
}

// BlockInfo returns detailed information about the given blocks.
// Required: _block_hashes.
func (c *Client) BlockInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointBlockInfo, params, opts...)
}

// BlockTxs lists the transactions included in the given blocks.
// Required: _block_hashes.
func (c *Client) BlockTxs(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointBlockTxs, params, opts...)
}

// UtxoInfo returns the UTxO set for the given UTxO references.
// Required: _utxo_refs.
func (c *Client) UtxoInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointUtxoInfo, params, opts...)
}

// TxInfo returns detailed information about the given transactions.
// Required: _tx_hashes.
func (c *Client) TxInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTxInfo, params, opts...)
}

// TxMetadata returns the metadata of the given transactions.
// Required: _tx_hashes.
func (c *Client) TxMetadata(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTxMetadata, params, opts...)
}

// TxMetalabels lists all known transaction metalabels.
func (c *Client) TxMetalabels(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTxMetalabels, nil, opts...)
}

// TxStatus returns the confirmation count of the given transactions.
// Required: _tx_hashes.
func (c *Client) TxStatus(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTxStatus, params, opts...)
}

// TxUtxos returns the inputs and outputs of the given transactions.
// Required: _tx_hashes.
func (c *Client) TxUtxos(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointTxUtxos, params, opts...)
}

// AddressInfo returns balance and UTxOs of the given addresses.
// Required: _addresses.
func (c *Client) AddressInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAddressInfo, params, opts...)
}

// AddressUtxos returns the UTxOs of the given addresses.
// Required: _addresses.
func (c *Client) AddressUtxos(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAddressUtxos, params, opts...)
}

// CredentialUtxos returns the UTxOs of the given payment credentials.
// Required: _payment_credentials.
func (c *Client) CredentialUtxos(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointCredentialUtxos, params, opts...)
}

// AddressTxs lists the transactions of the given addresses.
// Required: _addresses.
func (c *Client) AddressTxs(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAddressTxs, params, opts...)
}

// CredentialTxs lists the transactions of the given payment credentials.
// Required: _payment_credentials.
func (c *Client) CredentialTxs(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointCredentialTxs, params, opts...)
}

// AddressAssets lists the native assets held by the given addresses.
// Required: _addresses.
func (c *Client) AddressAssets(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAddressAssets, params, opts...)
}

// AccountList lists all stake addresses.
func (c *Client) AccountList(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountList, nil, opts...)
}

// AccountInfo returns status and balances of the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountInfo, params, opts...)
}

// AccountInfoCached returns cached status and balances of the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountInfoCached(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountInfoCached, params, opts...)
}

// AccountUtxos returns the UTxOs of the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountUtxos(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountUtxos, params, opts...)
}

// AccountTxs lists the transactions of a stake address.
// Required: _stake_address.
func (c *Client) AccountTxs(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountTxs, params, opts...)
}

// AccountRewards returns the rewards history of the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountRewards(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountRewards, params, opts...)
}

// AccountUpdates returns the registration and delegation history of the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountUpdates(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountUpdates, params, opts...)
}

// AccountAddresses lists the payment addresses of the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountAddresses(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountAddresses, params, opts...)
}

// AccountAssets lists the native assets held by the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountAssets(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountAssets, params, opts...)
}

// AccountHistory returns the staking history of the given stake addresses.
// Required: _stake_addresses.
func (c *Client) AccountHistory(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAccountHistory, params, opts...)
}

// AssetList lists all native assets.
func (c *Client) AssetList(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetList, nil, opts...)
}

// PolicyAssetList lists the assets minted under a policy.
// Required: _asset_policy.
func (c *Client) PolicyAssetList(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPolicyAssetList, params, opts...)
}

// AssetTokenRegistry lists the assets registered in the token registry.
func (c *Client) AssetTokenRegistry(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetTokenRegistry, nil, opts...)
}

// AssetInfoBulk returns information about the given policy and asset name pairs.
// Required: _asset_list.
func (c *Client) AssetInfoBulk(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetInfoBulk, params, opts...)
}

// AssetUtxos returns the UTxOs holding the given assets.
// Required: _asset_list.
func (c *Client) AssetUtxos(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetUtxos, params, opts...)
}

// AssetHistory returns the mint and burn history of an asset.
// Required: _asset_policy.
func (c *Client) AssetHistory(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetHistory, params, opts...)
}

// AssetAddresses lists the addresses holding an asset.
// Required: _asset_policy.
func (c *Client) AssetAddresses(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetAddresses, params, opts...)
}

// AssetNftAddress returns the address currently holding an NFT.
// Required: _asset_policy.
func (c *Client) AssetNftAddress(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetNftAddress, params, opts...)
}

// PolicyAssetAddresses lists the addresses holding assets of a policy.
// Required: _asset_policy.
func (c *Client) PolicyAssetAddresses(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPolicyAssetAddresses, params, opts...)
}

// PolicyAssetInfo returns information about the assets of a policy.
// Required: _asset_policy.
func (c *Client) PolicyAssetInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPolicyAssetInfo, params, opts...)
}

// AssetSummary returns holder and transaction counts for an asset.
// Required: _asset_policy.
func (c *Client) AssetSummary(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetSummary, params, opts...)
}

// AssetTxs lists the transactions involving an asset.
// Required: _asset_policy.
func (c *Client) AssetTxs(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetTxs, params, opts...)
}

// AssetAddressList lists the addresses holding an asset.
// Required: _asset_policy.
func (c *Client) AssetAddressList(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetAddressList, params, opts...)
}

// AssetPolicyInfo returns information about the assets of a policy.
// Required: _asset_policy.
func (c *Client) AssetPolicyInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointAssetPolicyInfo, params, opts...)
}

// PoolList lists all registered stake pools.
func (c *Client) PoolList(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolList, nil, opts...)
}

// PoolInfo returns current information about the given pools.
// Required: _pool_bech32_ids.
func (c *Client) PoolInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolInfo, params, opts...)
}

// PoolStakeSnapshot returns the mark, set and go stake snapshots of a pool.
// Required: _pool_bech32.
func (c *Client) PoolStakeSnapshot(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolStakeSnapshot, params, opts...)
}

// PoolDelegators lists the live delegators of a pool.
// Required: _pool_bech32.
func (c *Client) PoolDelegators(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolDelegators, params, opts...)
}

// PoolDelegatorsHistory lists the active delegators of a pool per epoch.
// Required: _pool_bech32.
func (c *Client) PoolDelegatorsHistory(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolDelegatorsHistory, params, opts...)
}

// PoolBlocks lists the blocks minted by a pool.
// Required: _pool_bech32.
func (c *Client) PoolBlocks(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolBlocks, params, opts...)
}

// PoolHistory returns the per-epoch history of a pool.
// Required: _pool_bech32.
func (c *Client) PoolHistory(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolHistory, params, opts...)
}

// PoolUpdates returns the update history of pools.
func (c *Client) PoolUpdates(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolUpdates, params, opts...)
}

// PoolRegistrations lists pool registrations made in an epoch.
func (c *Client) PoolRegistrations(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolRegistrations, params, opts...)
}

// PoolRetirements lists pool retirements made in an epoch.
func (c *Client) PoolRetirements(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolRetirements, params, opts...)
}

// PoolRelays lists the relays of all pools.
func (c *Client) PoolRelays(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolRelays, nil, opts...)
}

// PoolMetadata returns the metadata of the given pools.
func (c *Client) PoolMetadata(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPoolMetadata, params, opts...)
}

// ScriptInfo returns information about the given script hashes.
func (c *Client) ScriptInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointScriptInfo, params, opts...)
}

// NativeScriptList lists all native scripts.
func (c *Client) NativeScriptList(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointNativeScriptList, nil, opts...)
}

// PlutusScriptList lists all plutus scripts.
func (c *Client) PlutusScriptList(ctx context.Context, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointPlutusScriptList, nil, opts...)
}

// ScriptRedeemers lists the redeemers of a script.
// Required: _script_hash.
func (c *Client) ScriptRedeemers(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointScriptRedeemers, params, opts...)
}

// ScriptUtxos lists the UTxOs locked by a script.
// Required: _script_hash.
func (c *Client) ScriptUtxos(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointScriptUtxos, params, opts...)
}

// DatumInfo returns the values of the given datum hashes.
func (c *Client) DatumInfo(ctx context.Context, params Params, opts ...CallOption) Outcome {
	return c.Call(ctx, EndpointDatumInfo, params, opts...)
}
