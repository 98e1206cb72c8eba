package cli

const asciiLogo = `       _          _    _ _
 _ __ | |__   ___| | _(_) |_
| '_ \| '_ \ / __| |/ / | __|
| |_) | |_) | (__|   <| | |_
| .__/|_.__/ \___|_|\_\_|\__|
|_|`
