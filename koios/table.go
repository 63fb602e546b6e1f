package koios

// Endpoint names, one per Koios operation.
const (
	EndpointTip                   = "Tip"
	EndpointGenesis               = "Genesis"
	EndpointTotals                = "Totals"
	EndpointParamUpdates          = "ParamUpdates"
	EndpointReserveWithdrawals    = "ReserveWithdrawals"
	EndpointTreasuryWithdrawals   = "TreasuryWithdrawals"
	EndpointEpochInfo             = "EpochInfo"
	EndpointEpochParams           = "EpochParams"
	EndpointEpochBlockProtocols   = "EpochBlockProtocols"
	EndpointBlocks                = "Blocks"
	EndpointBlockInfo             = "BlockInfo"
	EndpointBlockTxs              = "BlockTxs"
	EndpointUtxoInfo              = "UtxoInfo"
	EndpointTxInfo                = "TxInfo"
	EndpointTxMetadata            = "TxMetadata"
	EndpointTxMetalabels          = "TxMetalabels"
	EndpointTxStatus              = "TxStatus"
	EndpointTxUtxos               = "TxUtxos"
	EndpointAddressInfo           = "AddressInfo"
	EndpointAddressUtxos          = "AddressUtxos"
	EndpointCredentialUtxos       = "CredentialUtxos"
	EndpointAddressTxs            = "AddressTxs"
	EndpointCredentialTxs         = "CredentialTxs"
	EndpointAddressAssets         = "AddressAssets"
	EndpointAccountList           = "AccountList"
	EndpointAccountInfo           = "AccountInfo"
	EndpointAccountInfoCached     = "AccountInfoCached"
	EndpointAccountUtxos          = "AccountUtxos"
	EndpointAccountTxs            = "AccountTxs"
	EndpointAccountRewards        = "AccountRewards"
	EndpointAccountUpdates        = "AccountUpdates"
	EndpointAccountAddresses      = "AccountAddresses"
	EndpointAccountAssets         = "AccountAssets"
	EndpointAccountHistory        = "AccountHistory"
	EndpointAssetList             = "AssetList"
	EndpointPolicyAssetList       = "PolicyAssetList"
	EndpointAssetTokenRegistry    = "AssetTokenRegistry"
	EndpointAssetInfoBulk         = "AssetInfoBulk"
	EndpointAssetUtxos            = "AssetUtxos"
	EndpointAssetHistory          = "AssetHistory"
	EndpointAssetAddresses        = "AssetAddresses"
	EndpointAssetNftAddress       = "AssetNftAddress"
	EndpointPolicyAssetAddresses  = "PolicyAssetAddresses"
	EndpointPolicyAssetInfo       = "PolicyAssetInfo"
	EndpointAssetSummary          = "AssetSummary"
	EndpointAssetTxs              = "AssetTxs"
	EndpointAssetAddressList      = "AssetAddressList"
	EndpointAssetPolicyInfo       = "AssetPolicyInfo"
	EndpointPoolList              = "PoolList"
	EndpointPoolInfo              = "PoolInfo"
	EndpointPoolStakeSnapshot     = "PoolStakeSnapshot"
	EndpointPoolDelegators        = "PoolDelegators"
	EndpointPoolDelegatorsHistory = "PoolDelegatorsHistory"
	EndpointPoolBlocks            = "PoolBlocks"
	EndpointPoolHistory           = "PoolHistory"
	EndpointPoolUpdates           = "PoolUpdates"
	EndpointPoolRegistrations     = "PoolRegistrations"
	EndpointPoolRetirements       = "PoolRetirements"
	EndpointPoolRelays            = "PoolRelays"
	EndpointPoolMetadata          = "PoolMetadata"
	EndpointScriptInfo            = "ScriptInfo"
	EndpointNativeScriptList      = "NativeScriptList"
	EndpointPlutusScriptList      = "PlutusScriptList"
	EndpointScriptRedeemers       = "ScriptRedeemers"
	EndpointScriptUtxos           = "ScriptUtxos"
	EndpointDatumInfo             = "DatumInfo"
)

var endpointTable = []Endpoint{
	get(EndpointTip, "/tip"),
	get(EndpointGenesis, "/genesis"),
	get(EndpointTotals, "/totals", opt("_epoch_no", TypeString)),
	get(EndpointParamUpdates, "/param_updates"),
	get(EndpointReserveWithdrawals, "/reserve_withdrawals"),
	get(EndpointTreasuryWithdrawals, "/treasury_withdrawals"),
	get(EndpointEpochInfo, "/epoch_info", opt("_epoch_no", TypeString), opt("_include_next_epoch", TypeBool)),
	get(EndpointEpochParams, "/epoch_params", opt("_epoch_no", TypeString)),
	get(EndpointEpochBlockProtocols, "/epoch_block_protocols", opt("_epoch_no", TypeString)),
	get(EndpointBlocks, "/blocks"),
	post(EndpointBlockInfo, "/block_info", req("_block_hashes", TypeStringList)),
	post(EndpointBlockTxs, "/block_txs", req("_block_hashes", TypeStringList)),
	post(EndpointUtxoInfo, "/utxo_info", req("_utxo_refs", TypeStringList), opt("_extended", TypeBool)),
	post(EndpointTxInfo, "/tx_info", req("_tx_hashes", TypeStringList)),
	post(EndpointTxMetadata, "/tx_metadata", req("_tx_hashes", TypeStringList)),
	get(EndpointTxMetalabels, "/tx_metalabels"),
	post(EndpointTxStatus, "/tx_status", req("_tx_hashes", TypeStringList)),
	post(EndpointTxUtxos, "/tx_utxos", req("_tx_hashes", TypeStringList)),
	post(EndpointAddressInfo, "/address_info", req("_addresses", TypeStringList)),
	post(EndpointAddressUtxos, "/address_utxos", req("_addresses", TypeStringList), opt("_extended", TypeBool)),
	post(EndpointCredentialUtxos, "/credential_utxos", req("_payment_credentials", TypeStringList), opt("_extended", TypeBool)),
	post(EndpointAddressTxs, "/address_txs", req("_addresses", TypeStringList), opt("_after_block_height", TypeScalar)),
	post(EndpointCredentialTxs, "/credential_txs", req("_payment_credentials", TypeStringList), opt("_after_block_height", TypeScalar)),
	post(EndpointAddressAssets, "/address_assets", req("_addresses", TypeStringList)),
	get(EndpointAccountList, "/account_list"),
	post(EndpointAccountInfo, "/account_info", req("_stake_addresses", TypeStringList)),
	post(EndpointAccountInfoCached, "/account_info_cached", req("_stake_addresses", TypeStringList)),
	post(EndpointAccountUtxos, "/account_utxos", req("_stake_addresses", TypeStringList), opt("_extended", TypeBool)),
	get(EndpointAccountTxs, "/account_txs", req("_stake_address", TypeString), opt("_after_block_height", TypeScalar)),
	post(EndpointAccountRewards, "/account_rewards", req("_stake_addresses", TypeStringList), opt("_epoch_no", TypeScalar)),
	post(EndpointAccountUpdates, "/account_updates", req("_stake_addresses", TypeStringList)),
	post(EndpointAccountAddresses, "/account_addresses", req("_stake_addresses", TypeStringList), opt("_first_only", TypeBool), opt("_empty", TypeBool)),
	post(EndpointAccountAssets, "/account_assets", req("_stake_addresses", TypeStringList)),
	post(EndpointAccountHistory, "/account_history", req("_stake_addresses", TypeStringList), opt("_epoch_no", TypeScalar)),
	get(EndpointAssetList, "/asset_list"),
	get(EndpointPolicyAssetList, "/policy_asset_list", req("_asset_policy", TypeString)),
	get(EndpointAssetTokenRegistry, "/asset_token_registry"),
	post(EndpointAssetInfoBulk, "/asset_info", req("_asset_list", TypeStringPairs)),
	post(EndpointAssetUtxos, "/asset_utxos", req("_asset_list", TypeStringPairs), opt("_extended", TypeBool)),
	get(EndpointAssetHistory, "/asset_history", req("_asset_policy", TypeString), opt("_asset_name", TypeString)),
	get(EndpointAssetAddresses, "/asset_addresses", req("_asset_policy", TypeString), opt("_asset_name", TypeString)),
	get(EndpointAssetNftAddress, "/asset_nft_address", req("_asset_policy", TypeString), opt("_asset_name", TypeString)),
	get(EndpointPolicyAssetAddresses, "/policy_asset_addresses", req("_asset_policy", TypeString)),
	get(EndpointPolicyAssetInfo, "/policy_asset_info", req("_asset_policy", TypeString)),
	get(EndpointAssetSummary, "/asset_summary", req("_asset_policy", TypeString), opt("_asset_name", TypeString)),
	get(EndpointAssetTxs, "/asset_txs", req("_asset_policy", TypeString), opt("_asset_name", TypeString), opt("_after_block_height", TypeScalar), opt("_history", TypeBool)),
	get(EndpointAssetAddressList, "/asset_address_list", req("_asset_policy", TypeString), opt("_asset_name", TypeString)),
	get(EndpointAssetPolicyInfo, "/asset_policy_info", req("_asset_policy", TypeString)),
	get(EndpointPoolList, "/pool_list"),
	post(EndpointPoolInfo, "/pool_info", req("_pool_bech32_ids", TypeStringList)),
	get(EndpointPoolStakeSnapshot, "/pool_stake_snapshot", req("_pool_bech32", TypeString)),
	get(EndpointPoolDelegators, "/pool_delegators", req("_pool_bech32", TypeString)),
	get(EndpointPoolDelegatorsHistory, "/pool_delegators_history", req("_pool_bech32", TypeString), opt("_epoch_no", TypeString)),
	get(EndpointPoolBlocks, "/pool_blocks", req("_pool_bech32", TypeString), opt("_epoch_no", TypeString)),
	get(EndpointPoolHistory, "/pool_history", req("_pool_bech32", TypeString), opt("_epoch_no", TypeString)),
	get(EndpointPoolUpdates, "/pool_updates", opt("_pool_bech32", TypeString)),
	get(EndpointPoolRegistrations, "/pool_registrations", opt("_epoch_no", TypeString)),
	get(EndpointPoolRetirements, "/pool_retirements", opt("_epoch_no", TypeString)),
	get(EndpointPoolRelays, "/pool_relays"),
	post(EndpointPoolMetadata, "/pool_metadata", opt("_pool_bech32_ids", TypeStringList)),
	post(EndpointScriptInfo, "/script_info", opt("_script_hashes", TypeStringList)),
	get(EndpointNativeScriptList, "/native_script_list"),
	get(EndpointPlutusScriptList, "/plutus_script_list"),
	get(EndpointScriptRedeemers, "/script_redeemers", req("_script_hash", TypeString)),
	get(EndpointScriptUtxos, "/script_utxos", req("_script_hash", TypeString), opt("_extended", TypeBool)),
	post(EndpointDatumInfo, "/datum_info", opt("_datum_hashes", TypeStringList)),
}
