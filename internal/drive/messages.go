package drive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
)

const signedMessageHeader = "Shadow Drive Signed Message:\n"

const (
	actionDelete              = "Delete Storage Account"
	actionCancelDelete        = "Cancel Delete Storage Account"
	actionClaimStake          = "Claim Stake"
	actionReduceStorage       = "Reduce Storage"
	actionAddStorage          = "Add Storage"
	actionAddImmutableStorage = "Add Immutable Storage"
	actionMakeImmutable       = "Make Storage Immutable"
)

func createAccountMessage(name string, size uint64) string {
	return fmt.Sprintf("%sCreate Storage Account: %s\nSize: %d", signedMessageHeader, name, size)
}

func accountMessage(action string, account crypto.PublicKey, size uint64) string {
	msg := fmt.Sprintf("%sStorage Account: %s\nAction: %s", signedMessageHeader, account, action)
	if size > 0 {
		msg += fmt.Sprintf("\nSize: %d", size)
	}
	return msg
}

func deleteFileMessage(account crypto.PublicKey, location string) string {
	return fmt.Sprintf("%sStorageAccount: %s\nFile to delete: %s", signedMessageHeader, account, location)
}

func editFileMessage(account crypto.PublicKey, location string, contents []byte) string {
	sum := sha256.Sum256(contents)
	return fmt.Sprintf("%s StorageAccount: %s\nFile to edit: %s\nNew file hash: %s", signedMessageHeader, account, location, hex.EncodeToString(sum[:]))
}

// uploadMessage commits to the names of the files in one upload call.
func uploadMessage(account crypto.PublicKey, names []string) string {
	sum := sha256.Sum256([]byte(joinNames(names)))
	return fmt.Sprintf("%sStorage Account: %s\nUpload files with hash: %s", signedMessageHeader, account, hex.EncodeToString(sum[:]))
}

func joinNames(names []string) string {
	return strings.Join(names, ",")
}
