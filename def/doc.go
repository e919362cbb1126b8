// Package def reads and writes the subset of DEF (Design Exchange Format)
// used by the scan chain router.
//
// Input designs carry the 32 driver pins in the PINS section and the
// ordinary pins in the COMPONENTS section:
//
//	VERSION 5.8 ;
//	DESIGN chip ;
//	DIEAREA ( 0 0 ) ( 1000 1000 ) ;
//	PINS 32 ;
//	- DRIVERPIN_0 + NET DRIVERPIN_0 + DIRECTION INPUT + USE SIGNAL
//	  + LAYER metal1 ( 0 0 ) ( 10 10 )
//	  + PLACED ( 0 100 ) N ;
//	…
//	END PINS
//	COMPONENTS 2 ;
//	- p1 im_psyched + PLACED ( 5 6 ) N ;
//	p2 im_psyched + PLACED ( 7 8 ) N ;
//	END COMPONENTS
//	END DESIGN
//
// The number in DRIVERPIN_<n> is the driver index; DIRECTION INPUT marks an
// input driver, any other direction an output driver. Header statements are
// kept verbatim and otherwise ignored, # starts a comment.
//
// Routed chains are written as one net per edge:
//
//	- BOGUS NET NAME
//	  (  a conn_in )
//	  (  b conn_out )
//	;
//
// and ParseNets reads such a file back into a conn_in → conn_out link map.
//
// Both grammars are built with participle; a Parser is safe for concurrent
// use once built.
package def
