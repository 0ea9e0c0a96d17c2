/*
Package domain contains the core models of the ordercheck classifier.

It is kept pure and free of I/O: a Word comes in, an OrderResult comes out.

# Key Entities

  - OrderState: the classification of a word (Ascending, Descending or Unordered).
  - OrderResult: a word paired with its OrderState, rendered as "<word> <LABEL>".
*/
package domain
