/*
Package tabulator binds the Tabulator JavaScript table widget
(https://tabulator.info) into a Go web application's output system.

The package has three parts: the payload serializer, which converts a
dataframe.Frame into the {data, columns, type_hints} JSON object the widget's
browser-side code consumes; the output binding, which resolves a user-supplied
value function once per rendering cycle and either produces a payload, reports
"nothing to render yet", or fails with a type-mismatch error; and the asset
helpers, which emit the script/stylesheet tags and output elements a page
needs, either globally in the head or co-located with each output element.

The wire shape is fixed: exactly the keys "data" (row-major cell values),
"columns" (column names in declared order) and "type_hints" (one type label
per column, order-aligned with columns).
*/
package tabulator
