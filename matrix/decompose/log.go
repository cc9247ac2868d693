// SPDX-License-Identifier: MIT

package decompose

import (
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("decompose")
