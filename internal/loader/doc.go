// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader builds the fits object model from its JSON interchange
// form. The interchange document is what an upstream reader (or another
// tool) emits after parsing a container file; this package performs no
// byte-level container parsing itself.
//
// Document shape:
//
//	{
//	  "source": "obs1.fits",
//	  "units": [
//	    {
//	      "name": "SCI",
//	      "cards": [
//	        {"keyword": "NAXIS", "value": 2, "comment": "number of axes"}
//	      ],
//	      "data": {
//	        "type": "image",
//	        "kind": "float",
//	        "shape": [2, 3],
//	        "pixels": [0.0, 1.5, 2.0, 3.0, 4.5, 5.0]
//	      }
//	    }
//	  ]
//	}
//
// data.type is one of image, table, raw, or the data key is absent for a
// headers-only unit. Image kinds are int, float, complex (pixels as [re,im]
// pairs), and bool. Table data carries a columns array, each column holding
// its descriptor attributes plus a data array of cells; a cell is a scalar
// or a numeric array for multi-valued columns. Raw data is base64 bytes.
package loader
