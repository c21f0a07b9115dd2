// Package feepolicy provides the fee rate and the treasury destination used
// when an escrowed payment is settled. The policy is a single gconf
// configuration, updated by its owner.
package feepolicy
