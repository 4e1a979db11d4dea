/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package main

/****************************************************************************************************************/

import "github.com/stellarforge/planetcast/cmd"

/****************************************************************************************************************/

func main() {
	cmd.Execute()
}

/****************************************************************************************************************/
