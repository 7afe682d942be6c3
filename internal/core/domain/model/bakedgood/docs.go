// Package bakedgood implements the catalog aggregate: a baked good offered by a
// baker with its price, stock, location and reviews.
package bakedgood
